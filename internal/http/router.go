package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter arma el router de gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	quizH *QuizHandler,
	resultsH *ResultsHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	quiz := r.Group("/quiz")
	quiz.POST("/attempts", quizH.SubmitAttempt)

	attempts := r.Group("/attempts")
	attempts.GET("/:id/results", resultsH.GetResults)
	attempts.GET("/:id/personality", resultsH.GetPersonality)
	attempts.GET("/:id/similar", resultsH.GetSimilar)
	attempts.POST("/:id/recompute", resultsH.Recompute)

	return r
}

// zapLoggerMiddleware loguea una linea por request con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en las
// respuestas.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
