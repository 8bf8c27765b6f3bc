package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RefreshFunc одна итерация обновления: загрузить окно и перерисовать картинку
type RefreshFunc func(ctx context.Context) error

// Scheduler управляет фоновым периодическим обновлением календаря
type Scheduler struct {
	refresh  RefreshFunc
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(refresh RefreshFunc, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		refresh:  refresh,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновое обновление
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background refresh", zap.Duration("interval", s.interval))
	go s.runRefreshTask(ctx)
}

// Stop останавливает фоновое обновление
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background refresh")
	close(s.stopChan)
}

// runRefreshTask периодически перерисовывает календарь
func (s *Scheduler) runRefreshTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-s.stopChan:
			s.logger.Info("Refresh task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Refresh task cancelled")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if err := s.refresh(ctx); err != nil {
		s.logger.Error("Failed to refresh calendar", zap.Error(err))
		return
	}
	s.logger.Info("Calendar refreshed")
}
