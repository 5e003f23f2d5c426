package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/mq"
	"github.com/qs-lzh/movie-catalog/internal/service"
	"github.com/qs-lzh/movie-catalog/internal/service/domain"
)

// Auditor records an event on the audit pipeline. Satisfied by
// workflow.AuditWorkflow.
type Auditor interface {
	Record(message mq.AuditMessage)
}

type AuthHandler struct {
	authService domain.AuthService
	auditor     Auditor
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, auditor Auditor, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		auditor:     auditor,
		logger:      logger,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, 400, "Username and password are required")
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(ctx, 400, "User not found")
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.auditor.Record(mq.AuditMessage{
				Action: mq.AuditActionLoginFailure,
				Detail: req.Username,
			})
			respondError(ctx, 401, "Invalid credentials")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	h.auditor.Record(mq.AuditMessage{
		Action:  mq.AuditActionLoginSuccess,
		ActorID: user.ID,
		Detail:  user.Username,
	})

	ctx.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    newUserView(user),
	})
}

func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, 400, "Username and password are required")
		return
	}

	user, err := h.authService.Register(req.Username, req.Password, toRole(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			respondError(ctx, 400, "Username already exists")
			return
		}
		if errors.Is(err, service.ErrValidation) {
			respondError(ctx, 400, "Invalid registration data")
			return
		}
		h.logger.Error("register failed", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	ctx.JSON(201, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    newUserView(user),
	})
}

func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		respondError(ctx, 401, "Authentication required")
		return
	}

	user, err := h.authService.GetProfile(identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(ctx, 404, "User not found")
			return
		}
		h.logger.Error("profile lookup failed", zap.Error(err))
		respondError(ctx, 500, err.Error())
		return
	}

	ctx.JSON(200, gin.H{
		"success": true,
		"user":    newUserView(user),
	})
}

func toRole(raw string) model.UserRole {
	return model.UserRole(strings.ToUpper(strings.TrimSpace(raw)))
}
