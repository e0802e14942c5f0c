package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sjcet-apps/billboard-core/internal/models"
	"github.com/sjcet-apps/billboard-core/internal/modules/gateway/gateway"
	pkgcron "github.com/sjcet-apps/billboard-core/internal/pkg/cron"
)

// registerCronJobs wires the scheduled background jobs and starts the
// scheduler.
func (a *App) registerCronJobs(ctx context.Context) {
	cronLogger := a.logger.Named("cron")

	a.sched.Register(pkgcron.Job{
		Name:        "refresh_feeds",
		Description: "refresh weather, news and market feeds",
		Interval:    5 * time.Minute,
		RunOnStart:  true,
		Fn: func(ctx context.Context) error {
			if err := a.feeds.RefreshAll(ctx); err != nil {
				cronLogger.Warn("feed refresh incomplete", zap.Error(err))
				a.hub.BroadcastDisplay(gateway.EventFeedUpdated, map[string]interface{}{"degraded": true})
				return err
			}
			a.hub.BroadcastDisplay(gateway.EventFeedUpdated, map[string]interface{}{"degraded": false})
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "publish_frame",
		Description: "push a fresh display frame to connected walls",
		Interval:    time.Minute,
		Fn: func(ctx context.Context) error {
			if a.hub.ClientCount(gateway.RoomDisplay) == 0 {
				return nil
			}
			if err := a.composer.Publish(ctx); err != nil {
				cronLogger.Warn("frame publish failed", zap.Error(err))
				return err
			}
			return nil
		},
	})

	a.sched.Register(pkgcron.Job{
		Name:        "cleanup_sessions",
		Description: "purge expired and revoked sign-in sessions",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			cutoff := time.Now()
			result := a.db.Where("expires_at < ? OR revoked_at IS NOT NULL", cutoff).
				Delete(&models.UserSession{})
			if result.Error != nil {
				cronLogger.Warn("session cleanup failed", zap.Error(result.Error))
				return result.Error
			}
			if result.RowsAffected > 0 {
				cronLogger.Info("session cleanup done", zap.Int64("removed", result.RowsAffected))
			}
			return nil
		},
	})

	go a.sched.Start(ctx)
}
