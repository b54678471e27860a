package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"bizmatch/internal/scoring"
	"bizmatch/internal/service"
)

// ResultsHandler sirve los caminos de lectura sobre resultados persistidos.
type ResultsHandler struct {
	logger     *zap.Logger
	scoringSvc *service.ScoringService
	quizSvc    *service.QuizService
	tokens     *service.ResultTokenService
	adminKey   string
}

func NewResultsHandler(
	logger *zap.Logger,
	scoringSvc *service.ScoringService,
	quizSvc *service.QuizService,
	tokens *service.ResultTokenService,
	adminKey string,
) *ResultsHandler {
	return &ResultsHandler{
		logger:     logger,
		scoringSvc: scoringSvc,
		quizSvc:    quizSvc,
		tokens:     tokens,
		adminKey:   adminKey,
	}
}

// GetResults maneja GET /attempts/:id/results. Solo lee registros
// persistidos: un intento sin puntuar se reporta, nunca se computa en
// silencio.
func (h *ResultsHandler) GetResults(c *gin.Context) {
	attemptID := c.Param("id")
	if !h.authorizeToken(c, attemptID) {
		return
	}

	record, err := h.scoringSvc.GetStored(c.Request.Context(), attemptID)
	if err != nil {
		if errors.Is(err, service.ErrNotScored) {
			c.JSON(http.StatusNotFound, gin.H{"error": "results not available"})
			return
		}
		h.logger.Error("get results failed", zap.Error(err), zap.String("attempt_id", attemptID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "results temporarily unavailable"})
		return
	}

	ranked := h.scoringSvc.Ranked(record)
	c.JSON(http.StatusOK, gin.H{
		"attempt_id":  record.AttemptID,
		"personality": record.Personality,
		"ranked":      ranked,
		"top":         scoring.TopN(ranked, 3),
		"computed_at": record.ComputedAt,
	})
}

// GetPersonality maneja GET /attempts/:id/personality.
func (h *ResultsHandler) GetPersonality(c *gin.Context) {
	attemptID := c.Param("id")
	if !h.authorizeToken(c, attemptID) {
		return
	}

	record, err := h.scoringSvc.GetStored(c.Request.Context(), attemptID)
	if err != nil {
		if errors.Is(err, service.ErrNotScored) {
			c.JSON(http.StatusNotFound, gin.H{"error": "results not available"})
			return
		}
		h.logger.Error("get personality failed", zap.Error(err), zap.String("attempt_id", attemptID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "results temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt_id":  record.AttemptID,
		"personality": record.Personality,
	})
}

// GetSimilar maneja GET /attempts/:id/similar.
func (h *ResultsHandler) GetSimilar(c *gin.Context) {
	attemptID := c.Param("id")
	if !h.authorizeToken(c, attemptID) {
		return
	}

	similar, err := h.scoringSvc.Similar(c.Request.Context(), attemptID, 5)
	if err != nil {
		if errors.Is(err, service.ErrNotScored) {
			c.JSON(http.StatusNotFound, gin.H{"error": "results not available"})
			return
		}
		h.logger.Error("similar lookup failed", zap.Error(err), zap.String("attempt_id", attemptID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "results temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt_id": attemptID,
		"similar":    similar,
	})
}

// Recompute maneja POST /attempts/:id/recompute, la valvula de escape solo
// para admin que permite re-puntuar legitimamente.
func (h *ResultsHandler) Recompute(c *gin.Context) {
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Admin-Key")), []byte(h.adminKey)) != 1 {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	attemptID := c.Param("id")
	attempt, err := h.quizSvc.Attempt(c.Request.Context(), attemptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "attempt not found"})
			return
		}
		h.logger.Error("load attempt failed", zap.Error(err), zap.String("attempt_id", attemptID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load attempt"})
		return
	}

	record, err := h.scoringSvc.Recompute(c.Request.Context(), attemptID, &attempt.Response)
	if err != nil {
		h.logger.Error("recompute failed", zap.Error(err), zap.String("attempt_id", attemptID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not recompute"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt_id":  record.AttemptID,
		"ranked":      h.scoringSvc.Ranked(record),
		"computed_at": record.ComputedAt,
	})
}

// authorizeToken chequea el token de acceso a resultados desde el query
// string o el header Authorization. Escribe la respuesta de error por si
// mismo.
func (h *ResultsHandler) authorizeToken(c *gin.Context, attemptID string) bool {
	token := c.Query("token")
	if token == "" {
		header := c.GetHeader("Authorization")
		token = strings.TrimPrefix(header, "Bearer ")
		if token == header {
			token = ""
		}
	}

	if err := h.tokens.Validate(token, attemptID); err != nil {
		status := http.StatusUnauthorized
		msg := "invalid token"
		if errors.Is(err, service.ErrTokenExpired) {
			msg = "token expired"
		}
		c.JSON(status, gin.H{"error": msg})
		return false
	}
	return true
}
