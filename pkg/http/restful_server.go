package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"tryvital.xyz/health-insights-service/pkg/assistant"
	"tryvital.xyz/health-insights-service/pkg/insights"
)

type RestfulServer struct {
	Server           *gin.Engine
	Core             *insights.Insights
	Assistant        assistant.Assistant
	RateLimiterStore *insights.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(clientKey string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(clientKey)
	}
}

func (rs *RestfulServer) CheckClientLimiter(clientKey string) bool {
	limiter := rs.GetLimiter(clientKey)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(clientKey string, clientRate float64, clientBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(clientKey, rate.Limit(clientRate), clientBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.GET("/health-data", rs.GetHealthData)
		api.GET("/study-focus", rs.GetStudyFocus)
		api.POST("/ask-question", rs.AskQuestion)
		api.GET("/suggested-questions", rs.GetSuggestedQuestions)
	}
}
