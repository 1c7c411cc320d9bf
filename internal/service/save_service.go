package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/game-save-backend/internal/domain"
	"github.com/dom/game-save-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SaveService stores and loads the per-user save blob. Every method takes
// the already-resolved caller; identity is never re-derived here.
type SaveService struct {
	saveRepo repository.SaveRepository
}

func NewSaveService(saveRepo repository.SaveRepository) *SaveService {
	return &SaveService{saveRepo: saveRepo}
}

// Load returns the user's save blob, or nil when the user has never saved.
// "No save yet" is not an error.
func (s *SaveService) Load(ctx context.Context, user *domain.User) (datatypes.JSON, error) {
	save, err := s.saveRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return save.SaveData, nil
}

// Save overwrites the user's save blob, creating the row on first save.
// The payload is stored opaquely; its contents are never inspected.
func (s *SaveService) Save(ctx context.Context, user *domain.User, data datatypes.JSON) error {
	return s.saveRepo.Upsert(ctx, &domain.PlayerSave{
		UserID:    user.ID,
		SaveData:  data,
		UpdatedAt: time.Now(),
	})
}
