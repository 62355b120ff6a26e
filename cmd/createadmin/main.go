// Command createadmin provisions an administrator account directly in the
// database. Intended for bootstrapping a fresh deployment:
//
//	createadmin -username admin -email admin@example.com -password <secret>
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/infrastructure/config"
	mongodb "github.com/blog-platform/blog-api/internal/infrastructure/db/mongo"
	"github.com/blog-platform/blog-api/pkg/logger"
)

func main() {
	username := flag.String("username", "", "admin username")
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 6 characters)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, true, nil)

	if *username == "" || *email == "" || *password == "" {
		log.Fatal().Msg("username, email and password are all required")
	}
	if len(*password) < 6 {
		log.Fatal().Msg("password must be at least 6 characters")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	users := mongodb.NewUserRepository(db)
	admin, err := users.Create(ctx, &domain.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Fatal().Msg("a user with that username or email already exists")
		}
		log.Fatal().Err(err).Msg("admin creation failed")
	}

	log.Info().
		Str("id", admin.ID).
		Str("username", admin.Username).
		Str("email", admin.Email).
		Msg("admin account created")
}
