package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"college-organizer/internal/config"
	"college-organizer/internal/notify"
	"college-organizer/internal/repository"
	"college-organizer/internal/schedule"
	"college-organizer/internal/server"
	"college-organizer/internal/service"
	"college-organizer/internal/summary"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config")
	}

	log := newLogger(cfg)
	gin.SetMode(gin.ReleaseMode)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	trackRepo := repository.NewTrackRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	subtaskRepo := repository.NewSubtaskRepository(db)
	pomodoroRepo := repository.NewPomodoroRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	trackSvc := service.NewTrackService(trackRepo)
	projectSvc := service.NewProjectService(projectRepo, trackRepo)
	subtaskSvc := service.NewSubtaskService(subtaskRepo, taskRepo)
	pomodoroSvc := service.NewPomodoroService(pomodoroRepo)
	exportSvc := service.NewExportService(taskSvc, trackSvc, projectSvc)
	summarySvc := summary.New(taskSvc, trackSvc)

	if cfg.Seed {
		if err := service.Seed(ctx, taskSvc, trackSvc); err != nil {
			log.Fatal().Err(err).Msg("seed store")
		}
	}

	center := notify.NewCenter(notify.DisplayTTL)

	srv := server.New(server.Deps{
		Log:       log,
		Tasks:     taskSvc,
		Tracks:    trackSvc,
		Projects:  projectSvc,
		Subtasks:  subtaskSvc,
		Pomodoros: pomodoroSvc,
		Export:    exportSvc,
		Center:    center,
		Limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	})

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.SweepInterval, func() {
		sweepCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		tasks, err := taskSvc.List(sweepCtx)
		if err != nil {
			log.Warn().Err(err).Msg("notification sweep")
			return
		}
		center.Evaluate(tasks, schedule.Today())
	}); err != nil {
		log.Fatal().Err(err).Msg("schedule sweep")
	}

	if cfg.SummaryTime != "" && cfg.TelegramToken != "" {
		sink, err := summary.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("telegram sink")
		}
		if _, err := scheduler.ScheduleDaily(cfg.SummaryTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			digest, err := summarySvc.Digest(jobCtx, schedule.Today())
			if err != nil {
				log.Warn().Err(err).Msg("build summary")
				return
			}
			if err := sink.Send(digest); err != nil {
				log.Warn().Err(err).Msg("send summary")
			}
		}); err != nil {
			log.Fatal().Err(err).Msg("schedule summary")
		}
	}

	scheduler.Start()
	defer scheduler.Stop()

	log.Info().Str("addr", cfg.Addr).Msg("organizer started")
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Run(cfg.Addr) }()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server stopped")
	case <-ctx.Done():
		log.Info().Msg("shutdown complete")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.LogPretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
