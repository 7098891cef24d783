package services

import (
	"context"
	"time"

	"hirehub/internal/repository"

	"go.uber.org/zap"
)

// Reminder periodically nudges users who have not logged any activity today.
// Delivery is log-only for now; a mail backend would slot in here.
type Reminder struct {
	log      *zap.Logger
	interval time.Duration
}

func NewReminder(log *zap.Logger) *Reminder {
	return &Reminder{
		log:      log,
		interval: 1 * time.Hour,
	}
}

// Start runs the reminder loop in a goroutine until the context is canceled.
func (r *Reminder) Start(ctx context.Context) {
	r.log.Info("Starting activity reminder loop")
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.runCheck(ctx)
			}
		}
	}()
}

func (r *Reminder) runCheck(ctx context.Context) {
	today := time.Now().UTC()
	r.log.Debug("Running activity reminder check", zap.String("day", today.Format("2006-01-02")))

	userIDs, err := repository.ListUserIDsWithActivity(ctx)
	if err != nil {
		r.log.Error("Failed to list users for reminder check", zap.Error(err))
		return
	}

	for _, userID := range userIDs {
		active, err := repository.HasActivityOn(ctx, userID, today)
		if err != nil {
			r.log.Error("Failed to check today's activity", zap.Uint("userID", userID), zap.Error(err))
			continue
		}
		if !active {
			r.log.Info("User has no activity today, reminder due", zap.Uint("userID", userID))
		}
	}
}
