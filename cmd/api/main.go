package main

import (
	"github.com/sirupsen/logrus"

	"messagely/internal/config"
	"messagely/internal/database"
	"messagely/internal/server"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DSN)
	if err != nil {
		logrus.Fatalf("DB connect error: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "migrations"); err != nil {
		logrus.Fatalf("migrations error: %v", err)
	}

	srv := server.NewServer(":"+cfg.Port, db, cfg.SecretKey, cfg.JWTTTLHrs, cfg.BcryptCost, cfg.Env)
	if err := srv.Run(); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
