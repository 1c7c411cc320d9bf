package postgres

import (
	"context"

	"github.com/dom/game-save-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type saveRepository struct {
	db *gorm.DB
}

func NewSaveRepository(db *gorm.DB) *saveRepository {
	return &saveRepository{db: db}
}

func (r *saveRepository) GetByUserID(ctx context.Context, userID uint) (*domain.PlayerSave, error) {
	var save domain.PlayerSave
	err := r.db.WithContext(ctx).First(&save, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &save, nil
}

func (r *saveRepository) Upsert(ctx context.Context, save *domain.PlayerSave) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"save_data", "updated_at"}),
	}).Create(save).Error
}
