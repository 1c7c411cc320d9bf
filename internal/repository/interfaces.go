package repository

import (
	"context"

	"github.com/dom/game-save-backend/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. Returns gorm.ErrDuplicatedKey when the
	// username is already taken; the unique index makes check-and-insert
	// atomic under concurrent registrations.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id uint, passwordHash string) error
}

type SaveRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*domain.PlayerSave, error)
	// Upsert creates the user's save row or overwrites save_data and
	// updated_at if one already exists.
	Upsert(ctx context.Context, save *domain.PlayerSave) error
}

type Repositories struct {
	User UserRepository
	Save SaveRepository
}
