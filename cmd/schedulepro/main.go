package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/schedulepro/calendar/internal/api"
	"github.com/schedulepro/calendar/internal/app"
	"github.com/schedulepro/calendar/internal/calendar"
	"github.com/schedulepro/calendar/internal/config"
	"github.com/schedulepro/calendar/internal/render"
	"github.com/schedulepro/calendar/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting SchedulePro calendar",
		"environment", cfg.Environment,
		"api_base_url", cfg.APIBaseURL,
		"view", cfg.View)

	client := api.NewClient(cfg.APIBaseURL, logger)
	svc := service.NewAppointmentService(client, logger, nil)
	mode := calendar.ViewMode(cfg.View)

	refresh := func(ctx context.Context) error {
		now := time.Now()
		occurrences, err := svc.LoadWindow(ctx, cfg.UserID, now, mode)
		if err != nil {
			return err
		}

		image, err := render.Render(mode, occurrences, now, now)
		if err != nil {
			return err
		}
		return os.WriteFile(cfg.OutputPath, image, 0644)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Разовый запуск, если фоновое обновление не настроено
	if cfg.RefreshMinutes <= 0 {
		if err := refresh(ctx); err != nil {
			logger.Fatal("Failed to render calendar", zap.Error(err))
		}
		logger.Info("Calendar rendered", zap.String("output", cfg.OutputPath))
		return
	}

	scheduler := app.NewScheduler(refresh, time.Duration(cfg.RefreshMinutes)*time.Minute, logger)
	scheduler.Start(ctx)

	<-ctx.Done()
	scheduler.Stop()
	logger.Info("Shutting down")
}
