// Package server exposes the organizer over a JSON REST API.
package server

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"college-organizer/internal/notify"
	"college-organizer/internal/schedule"
	"college-organizer/internal/service"
)

// Server wires the entity services and derived views onto a gin router.
type Server struct {
	router *gin.Engine
	log    zerolog.Logger

	tasks     *service.TaskService
	tracks    *service.TrackService
	projects  *service.ProjectService
	subtasks  *service.SubtaskService
	pomodoros *service.PomodoroService
	export    *service.ExportService
	center    *notify.Center
}

// Deps carries everything the server needs.
type Deps struct {
	Log       zerolog.Logger
	Tasks     *service.TaskService
	Tracks    *service.TrackService
	Projects  *service.ProjectService
	Subtasks  *service.SubtaskService
	Pomodoros *service.PomodoroService
	Export    *service.ExportService
	Center    *notify.Center
	Limiter   *rate.Limiter
}

// New builds the router. Pass a nil limiter to disable rate limiting.
func New(deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(deps.Log))
	if deps.Limiter != nil {
		router.Use(rateLimiter(deps.Limiter))
	}

	s := &Server{
		router:    router,
		log:       deps.Log,
		tasks:     deps.Tasks,
		tracks:    deps.Tracks,
		projects:  deps.Projects,
		subtasks:  deps.Subtasks,
		pomodoros: deps.Pomodoros,
		export:    deps.Export,
		center:    deps.Center,
	}

	api := router.Group("/api")
	{
		api.GET("/tasks", s.handleListTasks)
		api.POST("/tasks", s.handleCreateTask)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PATCH("/tasks/:id", s.handleUpdateTask)
		api.DELETE("/tasks/:id", s.handleDeleteTask)
		api.GET("/tasks/:id/subtasks", s.handleListSubtasks)

		api.POST("/subtasks", s.handleCreateSubtask)
		api.PATCH("/subtasks/:id", s.handleUpdateSubtask)
		api.DELETE("/subtasks/:id", s.handleDeleteSubtask)

		api.GET("/tracks", s.handleListTracks)
		api.POST("/tracks", s.handleCreateTrack)
		api.GET("/tracks/:id", s.handleGetTrack)
		api.PATCH("/tracks/:id", s.handleUpdateTrack)
		api.DELETE("/tracks/:id", s.handleDeleteTrack)

		api.GET("/projects", s.handleListProjects)
		api.POST("/projects", s.handleCreateProject)
		api.GET("/projects/:id", s.handleGetProject)
		api.PATCH("/projects/:id", s.handleUpdateProject)
		api.DELETE("/projects/:id", s.handleDeleteProject)

		api.GET("/pomodoro-sessions", s.handleListPomodoros)
		api.POST("/pomodoro-sessions", s.handleCreatePomodoro)

		views := api.Group("/views")
		{
			views.GET("/today", s.handleTodayView)
			views.GET("/upcoming", s.handleUpcomingView)
			views.GET("/calendar", s.handleCalendarView)
			views.GET("/timeblocks", s.handleTimeBlocksView)
			views.GET("/timeline", s.handleTimelineView)
			views.GET("/rollups", s.handleRollupsView)
		}

		api.GET("/stats", s.handleStats)
		api.GET("/notifications", s.handleListNotifications)
		api.DELETE("/notifications/:id", s.handleDismissNotification)
		api.GET("/export", s.handleExport)
		api.POST("/import", s.handleImport)
	}

	return s
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// refreshNotifications re-evaluates the one-shot alert conditions after a
// task mutation. Failures only cost a log line; the mutation itself has
// already succeeded.
func (s *Server) refreshNotifications(ctx context.Context) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("notification sweep failed")
		return
	}
	s.center.Evaluate(tasks, schedule.Today())
}
