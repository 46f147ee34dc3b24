package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/ikovsky-api/internal/logger"
	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"github.com/Conceptual-Machines/ikovsky-api/internal/params"
	"github.com/Conceptual-Machines/ikovsky-api/internal/services"
	"github.com/Conceptual-Machines/ikovsky-api/internal/storage"
	"github.com/gin-gonic/gin"
)

// SongService is the part of services.SongService the handlers call
type SongService interface {
	Generate(ctx context.Context, req models.GenerateSongRequest) (*models.SongResponse, error)
	Get(ctx context.Context, id string) (*models.SongResponse, error)
	Save(ctx context.Context, id string) error
	Stats() services.Stats
}

type SongHandler struct {
	songs SongService
}

func NewSongHandler(songs SongService) *SongHandler {
	return &SongHandler{songs: songs}
}

// Generate composes a new song from the request body
func (h *SongHandler) Generate(c *gin.Context) {
	var req models.GenerateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songs.Generate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "Song generation failed", err)
		return
	}

	c.JSON(http.StatusCreated, song)
}

// Get returns a stored song
func (h *SongHandler) Get(c *gin.Context) {
	song, err := h.songs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "Song lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, song)
}

// Save bookmarks a stored song
func (h *SongHandler) Save(c *gin.Context) {
	id := c.Param("id")
	if err := h.songs.Save(c.Request.Context(), id); err != nil {
		h.fail(c, "Song save failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "saved": true})
}

func (h *SongHandler) fail(c *gin.Context, msg string, err error) {
	var cfgErr *params.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"param": cfgErr.Param,
		})
	case errors.Is(err, storage.ErrSongNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Song not found"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Request cancelled before a generation slot freed up"})
	default:
		fields := logger.WithContext(c)
		if id := c.Param("id"); id != "" {
			fields["song_id"] = id
		}
		logger.Error(msg, err, fields)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Internal server error",
			"request_id": c.GetString("request_id"),
		})
	}
}
