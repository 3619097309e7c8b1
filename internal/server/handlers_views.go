package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"college-organizer/internal/schedule"
	"college-organizer/internal/service"
	"college-organizer/internal/view"
)

func (s *Server) handleTodayView(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	filtered := view.Filter(tasks, c.Query("q"))
	c.JSON(http.StatusOK, view.TodayBucket(filtered, schedule.Today()))
}

func (s *Server) handleUpcomingView(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	filtered := view.Filter(tasks, c.Query("q"))
	c.JSON(http.StatusOK, view.UpcomingBucket(filtered, schedule.Today()))
}

func (s *Server) handleCalendarView(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 0 || month > 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 0-11"})
		return
	}
	expand := c.Query("expand") == "true"

	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Month(tasks, year, month, expand))
}

func (s *Server) handleTimeBlocksView(c *gin.Context) {
	date := c.Query("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view.TimeBlocks(tasks, date))
}

func (s *Server) handleTimelineView(c *gin.Context) {
	start := c.DefaultQuery("start", schedule.Today())
	if !validDate(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
		return
	}
	tasks, err := s.tasks.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Timeline(tasks, start, c.Query("trackId")))
}

func (s *Server) handleRollupsView(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	tracks, err := s.tracks.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tracks":   view.TrackRollups(tracks, tasks),
		"projects": view.ProjectRollups(projects, tracks, tasks),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	ctx := c.Request.Context()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	sessions, err := s.pomodoros.List(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, view.Statistics(tasks, sessions, schedule.Today()))
}

func (s *Server) handleListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, s.center.Active())
}

func (s *Server) handleDismissNotification(c *gin.Context) {
	if !s.center.Dismiss(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleExport(c *gin.Context) {
	payload, err := s.export.Export(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	switch c.DefaultQuery("format", "json") {
	case "json":
		c.JSON(http.StatusOK, payload)
	case "csv":
		out, err := service.RenderCSV(payload.Tasks, payload.Tracks)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Data(http.StatusOK, "text/csv", []byte(out))
	case "txt":
		c.Data(http.StatusOK, "text/plain", []byte(service.RenderText(payload.Tasks, payload.Tracks, time.Now())))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be json, csv or txt"})
	}
}

func (s *Server) handleImport(c *gin.Context) {
	var payload service.ExportPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := s.export.Import(c.Request.Context(), payload)
	if err != nil {
		respondErr(c, err)
		return
	}
	s.refreshNotifications(c.Request.Context())
	c.JSON(http.StatusOK, result)
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
