// Package scheduler периодически обновляет снимок коллекции вакансий.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher: то, что умеет перечитать коллекцию (jobs.UseCase).
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler оборачивает robfig/cron.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	spec      string
	timeout   time.Duration
}

// New создаёт планировщик со spec вида "@every 5m" или "*/10 * * * *".
func New(refresher Refresher, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		spec:      spec,
		timeout:   30 * time.Second,
	}
}

// Start регистрирует задачу, запускает cron и сразу делает первое обновление,
// не дожидаясь тика.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.run(ctx) }); err != nil {
		return fmt.Errorf("cron spec %q: %w", s.spec, err)
	}
	s.cron.Start()
	slog.Info("scheduler: started", slog.String("spec", s.spec))

	go s.run(ctx)
	return nil
}

// Stop останавливает cron и ждёт завершения текущего запуска.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler: stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		slog.Error("scheduler: refresh failed", slog.Any("error", err))
		return
	}
	slog.Debug("scheduler: snapshot refreshed", slog.Duration("took", time.Since(started)))
}
