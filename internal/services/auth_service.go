package services

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// AuthService owns registration, login and password changes.
type AuthService struct {
	Users     repositories.UserRepo
	Limiter   *LoginLimiter
	JWTSecret []byte
	RequestID string
	Now       func() time.Time // test hook
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Identifier string `json:"identifier"` // email or 10-digit mobile
	Password   string `json:"password"`
}

// ValidatePassword enforces the signup password policy: 8 to 50 characters
// with at least one uppercase letter, one lowercase letter and one digit.
func ValidatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 50 {
		return domain.ValidationError{Field: "password", Msg: "password must be 8-50 characters"}
	}
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return domain.ValidationError{Field: "password", Msg: "password must contain an uppercase letter, a lowercase letter and a digit"}
	}
	return nil
}

// Register creates a manual-signup account with role user.
func (s AuthService) Register(p RegisterPayload) (models.User, error) {
	name := utils.NormalizeSpace(p.Name)
	email := strings.ToLower(strings.TrimSpace(p.Email))
	mobile := strings.TrimSpace(p.Mobile)

	if name == "" {
		return models.User{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if !emailRe.MatchString(email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email address"}
	}
	if !mobileRe.MatchString(mobile) {
		return models.User{}, domain.ValidationError{Field: "mobile", Msg: "mobile number must be 10 digits"}
	}
	if err := ValidatePassword(p.Password); err != nil {
		return models.User{}, err
	}

	exists, err := s.Users.ExistsByEmailOrMobile(email, mobile)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to check existing users", Err: err}
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or mobile already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	u := models.User{
		Name:         name,
		Email:        email,
		Mobile:       mobile,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		SignupMethod: "manual",
		CreatedAt:    s.now(),
	}
	if err := s.Users.Insert(&u); err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to create user", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", u.ID))
	return u, nil
}

// Login verifies credentials under the per-identifier rate limit and issues
// a signed token. The device descriptor is recorded for the account page.
func (s AuthService) Login(p LoginPayload, device string) (models.User, string, error) {
	identifier := strings.TrimSpace(p.Identifier)
	if identifier == "" || p.Password == "" {
		return models.User{}, "", domain.ValidationError{Field: "identifier", Msg: "identifier and password are required"}
	}
	identifier = strings.ToLower(identifier)

	if s.Limiter != nil {
		if ok, wait := s.Limiter.Allowed(identifier); !ok {
			return models.User{}, "", domain.ForbiddenError{
				Msg: fmt.Sprintf("too many failed attempts, try again in %d minutes", int(wait.Minutes())+1),
			}
		}
	}

	u, err := s.Users.GetByIdentifier(identifier)
	if err != nil {
		if repositories.IsNoRows(err) {
			s.recordFailure(identifier)
			return models.User{}, "", domain.ValidationError{Field: "identifier", Msg: "invalid credentials"}
		}
		return models.User{}, "", domain.InternalError{Msg: "failed to load user", Err: err}
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(p.Password)) != nil {
		s.recordFailure(identifier)
		return models.User{}, "", domain.ValidationError{Field: "password", Msg: "invalid credentials"}
	}
	if s.Limiter != nil {
		s.Limiter.Success(identifier)
	}

	at := s.now()
	if err := s.Users.RecordLogin(u.ID, device, at); err != nil {
		utils.LogWarn(s.RequestID, "auth", "record_login", err)
	} else {
		u.LastLoginAt = &at
		u.LastLoginDevice = device
	}

	token, err := s.issueToken(u)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d device=%q", u.ID, device))
	return u, token, nil
}

func (s AuthService) recordFailure(identifier string) {
	if s.Limiter != nil {
		s.Limiter.Failure(identifier)
	}
}

func (s AuthService) issueToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":  u.ID,
		"role": u.Role,
		"exp":  s.now().Add(tokenLifetime).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.JWTSecret)
}

// ChangePassword verifies the current password before swapping the hash.
func (s AuthService) ChangePassword(userID int64, oldPassword, newPassword string) error {
	u, err := s.Users.GetByID(userID)
	if err != nil {
		if repositories.IsNoRows(err) {
			return domain.NotFoundError{Resource: "user"}
		}
		return domain.InternalError{Msg: "failed to load user", Err: err}
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)) != nil {
		return domain.ValidationError{Field: "oldPassword", Msg: "current password is incorrect"}
	}
	if err := ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	if err := s.Users.UpdatePassword(userID, string(hash)); err != nil {
		return domain.InternalError{Msg: "failed to update password", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "change_password", fmt.Sprintf("user_id=%d", userID))
	return nil
}

// DescribeDevice reduces a User-Agent header to a coarse descriptor such as
// "Mobile / Chrome".
func DescribeDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	if ua == "" {
		return "Unknown"
	}

	form := "Desktop"
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		form = "Tablet"
	case strings.Contains(ua, "mobi") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		form = "Mobile"
	}

	browser := "Other"
	switch {
	case strings.Contains(ua, "edg/"):
		browser = "Edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	}

	return form + " / " + browser
}
