package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	AdminEmail   string
	SupportEmail string

	JWTSecret string

	CORSOrigins []string

	BusinessCardPath string
	WhatsAppNumber   string
}

// LoadEnv reads configuration from the environment. A local .env file is
// honored when present so development does not require exported variables.
func LoadEnv() Env {
	_ = godotenv.Load()

	smtpPort := 587
	if p, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SMTP_PORT"))); err == nil && p > 0 {
		smtpPort = p
	}

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "travels"),

		SMTPHost: getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: smtpPort,
		SMTPUser: strings.TrimSpace(os.Getenv("SMTP_USER")),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: getenv("SMTP_FROM", "travels.bappa15@gmail.com"),

		AdminEmail:   getenv("ADMIN_EMAIL", "yashnile.435@gmail.com"),
		SupportEmail: getenv("SUPPORT_EMAIL", "support@bappatravels.com"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		CORSOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS",
			"https://bappatravels.com,https://www.bappatravels.com,http://bappatravels.com,http://www.bappatravels.com,https://bappatravels.netlify.app,http://localhost:3000")),

		BusinessCardPath: getenv("BUSINESS_CARD_PATH", "assets/card.jpg"),
		WhatsAppNumber:   getenv("WHATSAPP_NUMBER", "919011333966"),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
