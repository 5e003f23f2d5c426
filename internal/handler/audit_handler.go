package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-catalog/internal/service/domain"
)

type AuditHandler struct {
	auditService domain.AuditService
	logger       *zap.Logger
}

func NewAuditHandler(auditService domain.AuditService, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
		logger:       logger,
	}
}

func (h *AuditHandler) HandleList(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	entries, err := h.auditService.ListRecent(limit)
	if err != nil {
		h.logger.Error("failed to list audit entries", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	ctx.JSON(200, gin.H{
		"success": true,
		"data":    entries,
	})
}
