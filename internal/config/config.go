package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DSN        string
	SecretKey  string
	BcryptCost int
	JWTTTLHrs  int
	Env        string
}

// Load reads configuration from the environment, with a .env file as
// fallback. DB_DSN must include parseTime=true so timestamps scan into
// time.Time.
func Load() *Config {
	_ = godotenv.Load()

	cost, err := strconv.Atoi(getEnv("BCRYPT_COST", "12"))
	if err != nil {
		cost = 12
	}
	// 0 means tokens are issued without an expiry claim.
	ttl, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "0"))
	if err != nil {
		ttl = 0
	}

	c := &Config{
		Port:       getEnv("PORT", "8080"),
		DSN:        mustEnv("DB_DSN"),
		SecretKey:  mustEnv("SECRET_KEY"),
		BcryptCost: cost,
		JWTTTLHrs:  ttl,
		Env:        getEnv("ENV", "dev"),
	}
	log.Printf("config loaded: env=%s port=%s", c.Env, c.Port)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env: %s", k)
	}
	return v
}
