package repository

import (
	"context"
	"time"

	"hirehub/internal/database"
	"hirehub/internal/models"
)

// AppendProgress stores one activity record for the user.
func AppendProgress(ctx context.Context, entry *models.ProgressEntry) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	return database.DB.WithContext(ctx).Create(entry).Error
}

// ListProgress returns the most recent activity records, newest first.
func ListProgress(ctx context.Context, userID uint, limit int) ([]models.ProgressEntry, error) {
	var entries []models.ProgressEntry
	q := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&entries).Error
	return entries, err
}

// ListAllProgress returns every record for the user; analytics is computed
// from scratch on each view, so no cap is applied here.
func ListAllProgress(ctx context.Context, userID uint) ([]models.ProgressEntry, error) {
	return ListProgress(ctx, userID, 0)
}

// HasActivityOn reports whether the user logged anything on the given
// calendar day (UTC).
func HasActivityOn(ctx context.Context, userID uint, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	var count int64
	err := database.DB.WithContext(ctx).Model(&models.ProgressEntry{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Count(&count).Error
	return count > 0, err
}

// ListUserIDsWithActivity returns the IDs of all users that have at least one
// progress entry. Used by the reminder check.
func ListUserIDsWithActivity(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := database.DB.WithContext(ctx).Model(&models.ProgressEntry{}).
		Distinct("user_id").
		Pluck("user_id", &ids).Error
	return ids, err
}
