package repository

import (
	"context"
	"time"

	"hirehub/internal/database"
	"hirehub/internal/models"

	"github.com/google/uuid"
)

// AppendMistake stores one mistake record. The ID is assigned here.
func AppendMistake(ctx context.Context, mistake *models.Mistake) error {
	if mistake.ID == "" {
		mistake.ID = uuid.NewString()
	}
	if mistake.CreatedAt.IsZero() {
		mistake.CreatedAt = time.Now()
	}
	return database.DB.WithContext(ctx).Create(mistake).Error
}

// ListMistakes returns the user's mistakes, newest first, optionally
// filtered by type.
func ListMistakes(ctx context.Context, userID uint, mistakeType string) ([]models.Mistake, error) {
	var mistakes []models.Mistake
	q := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if mistakeType != "" {
		q = q.Where("type = ?", mistakeType)
	}
	err := q.Find(&mistakes).Error
	return mistakes, err
}

// MarkMistakeReviewed flips the reviewed flag on the user's mistake.
func MarkMistakeReviewed(ctx context.Context, userID uint, id string) error {
	return database.DB.WithContext(ctx).Model(&models.Mistake{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("reviewed", true).Error
}

// DeleteMistake removes one mistake owned by the user.
func DeleteMistake(ctx context.Context, userID uint, id string) error {
	return database.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Mistake{}).Error
}

// ClearMistakes removes all of the user's mistakes.
func ClearMistakes(ctx context.Context, userID uint) error {
	return database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Mistake{}).Error
}
