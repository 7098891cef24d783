package repository

import (
	"context"

	"hirehub/internal/database"
	"hirehub/internal/models"
)

// SaveResumeAnalysis persists one analysis run.
func SaveResumeAnalysis(ctx context.Context, analysis *models.ResumeAnalysis) error {
	return database.DB.WithContext(ctx).Create(analysis).Error
}

// LatestResumeAnalysis returns the user's most recent analysis.
func LatestResumeAnalysis(ctx context.Context, userID uint) (*models.ResumeAnalysis, error) {
	var analysis models.ResumeAnalysis
	result := database.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("analyzed_at DESC").
		First(&analysis)
	return &analysis, result.Error
}
