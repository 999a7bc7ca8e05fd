package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var AccessTokenExpiration time.Duration
var RefreshTokenExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	AccessTokenExpiration = 24 * time.Hour
	RefreshTokenExpiration = 7 * 24 * time.Hour
}
