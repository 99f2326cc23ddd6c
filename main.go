package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelbackend/internal/config"
	"travelbackend/internal/db"
	router "travelbackend/internal/http"
	"travelbackend/internal/http/handlers"
	"travelbackend/internal/mail"
	"travelbackend/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	conn := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("failed to prepare schema: %v", err)
	}

	notifier := &mail.Notify{
		Sender:       mail.NewSMTPSender(env),
		From:         env.SMTPFrom,
		AdminEmail:   env.AdminEmail,
		SupportEmail: env.SupportEmail,
	}
	handlers.Configure(env, notifier, services.NewLoginLimiter())

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
