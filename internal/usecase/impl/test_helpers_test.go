package impl

import (
	"io"
	"log/slog"
	"time"

	"linkauth/config"
	"linkauth/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Access:  config.TokenConfig{Secret: "access-secret", Expiry: 15 * time.Minute},
		Refresh: config.TokenConfig{Secret: "refresh-secret", Expiry: 7 * 24 * time.Hour},
		Auth: &config.AuthConfig{
			BcryptCost:       4,
			UsernameAttempts: 1,
			StoreTimeout:     time.Second,
			Issuer:           "linkauth",
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func newTestAccount(username, email string) *entity.Account {
	return &entity.Account{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     username,
		Email:        email,
		PasswordHash: strPtr("hashed_password"),
	}
}
