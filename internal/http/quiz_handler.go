package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bizmatch/internal/domain"
	"bizmatch/internal/service"
)

// QuizHandler agrupa dependencias de los endpoints de envio.
type QuizHandler struct {
	logger  *zap.Logger
	quizSvc *service.QuizService
}

func NewQuizHandler(logger *zap.Logger, quizSvc *service.QuizService) *QuizHandler {
	return &QuizHandler{
		logger:  logger,
		quizSvc: quizSvc,
	}
}

// SubmitAttempt maneja POST /quiz/attempts.
func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	var req struct {
		Email    string               `json:"email"`
		Response *domain.QuizResponse `json:"response" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid quiz submission", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.quizSvc.Submit(c.Request.Context(), req.Email, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many submissions, try again later"})
		case errors.Is(err, service.ErrEmailInvalid), errors.Is(err, service.ErrResponseRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		default:
			h.logger.Error("quiz submission failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process submission"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
