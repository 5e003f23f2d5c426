package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-catalog/internal/mq"
	"github.com/qs-lzh/movie-catalog/internal/service"
	"github.com/qs-lzh/movie-catalog/internal/service/domain"
)

type MovieHandler struct {
	movieService domain.MovieService
	auditor      Auditor
	logger       *zap.Logger
}

func NewMovieHandler(movieService domain.MovieService, auditor Auditor, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
		auditor:      auditor,
		logger:       logger,
	}
}

func (h *MovieHandler) HandleList(ctx *gin.Context) {
	movies, err := h.movieService.ListMovies()
	if err != nil {
		h.logger.Error("failed to list movies", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	ctx.JSON(200, gin.H{
		"success": true,
		"data":    movies,
	})
}

func (h *MovieHandler) HandleGet(ctx *gin.Context) {
	id, ok := movieID(ctx)
	if !ok {
		return
	}

	movie, err := h.movieService.GetMovieByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, 404, "Movie not found")
			return
		}
		h.logger.Error("failed to get movie", zap.Uint("id", id), zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	ctx.JSON(200, gin.H{
		"success": true,
		"data":    movie,
	})
}

func (h *MovieHandler) HandleCreate(ctx *gin.Context) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		respondError(ctx, 401, "Authentication required")
		return
	}

	var input domain.MovieInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, 400, "Invalid request format")
		return
	}

	movie, err := h.movieService.CreateMovie(identity.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			respondError(ctx, 400, err.Error())
			return
		}
		h.logger.Error("failed to create movie", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	h.auditor.Record(mq.AuditMessage{
		Action:  mq.AuditActionMovieCreate,
		ActorID: identity.UserID,
		MovieID: &movie.ID,
		Detail:  movie.Title,
	})

	ctx.JSON(201, gin.H{
		"success": true,
		"data":    movie,
	})
}

func (h *MovieHandler) HandleUpdate(ctx *gin.Context) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		respondError(ctx, 401, "Authentication required")
		return
	}

	id, ok := movieID(ctx)
	if !ok {
		return
	}

	var input domain.MovieInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondError(ctx, 400, "Invalid request format")
		return
	}

	movie, err := h.movieService.UpdateMovie(id, input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, 404, "Movie not found")
			return
		}
		if errors.Is(err, service.ErrValidation) {
			respondError(ctx, 400, err.Error())
			return
		}
		h.logger.Error("failed to update movie", zap.Uint("id", id), zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	h.auditor.Record(mq.AuditMessage{
		Action:  mq.AuditActionMovieUpdate,
		ActorID: identity.UserID,
		MovieID: &movie.ID,
		Detail:  movie.Title,
	})

	ctx.JSON(200, gin.H{
		"success": true,
		"data":    movie,
	})
}

func (h *MovieHandler) HandleDelete(ctx *gin.Context) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		respondError(ctx, 401, "Authentication required")
		return
	}

	id, ok := movieID(ctx)
	if !ok {
		return
	}

	if err := h.movieService.DeleteMovie(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(ctx, 404, "Movie not found")
			return
		}
		h.logger.Error("failed to delete movie", zap.Uint("id", id), zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	h.auditor.Record(mq.AuditMessage{
		Action:  mq.AuditActionMovieDelete,
		ActorID: identity.UserID,
		MovieID: &id,
	})

	ctx.JSON(200, gin.H{
		"success": true,
		"message": "Movie deleted",
	})
}

func movieID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(ctx, 400, "Invalid movie id")
		return 0, false
	}
	return uint(id), true
}
