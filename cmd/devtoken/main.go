// Command devtoken mints a signed bearer token for local development, or
// revokes one by JTI when -revoke is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"personnel/internal/auth/revocation"
	"personnel/internal/jwttoken"
	"personnel/internal/platform/config"
	"personnel/internal/platform/redis"
)

func main() {
	subject := flag.String("subject", "dev-clerk", "token subject")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	revoke := flag.String("revoke", "", "JTI to add to the revocation list")
	flag.Parse()

	if err := run(*subject, *ttl, *revoke); err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
}

func run(subject string, ttl time.Duration, revokeJTI string) error {
	// devtoken never touches the database.
	if os.Getenv("DATABASE_URL") == "" {
		os.Setenv("DATABASE_URL", "unused")
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	if revokeJTI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("REDIS_URL is required to revoke tokens")
		}
		defer client.Close()
		return revocation.NewRedisTRL(client.Client).RevokeToken(ctx, revokeJTI, ttl)
	}

	svc := jwttoken.NewJWTService(cfg.Auth.JWTSigningKey, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	token, claims, err := svc.GenerateAccessToken(subject, ttl)
	if err != nil {
		return err
	}
	fmt.Printf("token: %s\njti:   %s\n", token, claims.ID)
	return nil
}
