package service

import (
	"github.com/dom/game-save-backend/internal/auth"
	"github.com/dom/game-save-backend/internal/config"
	"github.com/dom/game-save-backend/internal/repository"
)

type Services struct {
	Auth *AuthService
	Save *SaveService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	hasher := auth.NewArgon2idHasher()
	tokens := auth.NewTokenService(cfg.TokenSecret, cfg.TokenTTL)

	return &Services{
		Auth: NewAuthService(repos.User, hasher, tokens),
		Save: NewSaveService(repos.Save),
	}
}
