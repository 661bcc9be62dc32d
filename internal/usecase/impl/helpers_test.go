package impl

import (
	"io"
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Provider:       config.AuthProviderLocal,
			BcryptCost:     4,
			MinPasswordLen: 6,
		},
		Feed: &config.FeedConfig{
			DefaultLimit: 3,
			MaxLimit:     50,
		},
		Storage: &config.StorageConfig{
			MaxImageBytes: 1024,
		},
		Contact: &config.ContactConfig{
			Email:   "hello@inkwell.test",
			Socials: map[string]string{"github": "https://github.com/inkwell"},
		},
	}
	cfg.HTTP.PublicBaseURL = "https://inkwell.test/"
	cfg.Contact.Location.Name = "Dhaka, Bangladesh"
	cfg.Contact.Location.Latitude = 23.8103
	cfg.Contact.Location.Longitude = 90.4125

	return cfg
}

func strPtr(s string) *string {
	return &s
}

func newIdentity(userID string) *entity.Identity {
	return &entity.Identity{
		UserID:      userID,
		Email:       userID + "@inkwell.test",
		DisplayName: "",
		Provider:    entity.ProviderTypePassword,
	}
}
