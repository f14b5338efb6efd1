package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/jwt"
)

type SessionJobs struct {
	jwtService jwt.Service
}

func NewSessionJobs(jwtService jwt.Service) *SessionJobs {
	return &SessionJobs{jwtService: jwtService}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_stale_sessions", 1*time.Hour, j.PurgeStaleSessions)
}

// PurgeStaleSessions drops revocation and idle-tracking entries for tokens
// that expired on their own and no longer need bookkeeping.
func (j *SessionJobs) PurgeStaleSessions(ctx context.Context) error {
	slog.Info("Cron: Purging stale session entries")
	j.jwtService.PurgeStale(time.Now())
	return nil
}
