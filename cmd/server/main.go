package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"tryvital.xyz/health-insights-service/pkg/assistant"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/db"
	insightsHttp "tryvital.xyz/health-insights-service/pkg/http"
	"tryvital.xyz/health-insights-service/pkg/insights"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	healthDbType := os.Getenv(common.EnvKeyHealthDBType)
	switch healthDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown HEALTH_DB_TYPE: " + healthDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHealthHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyHealthDefaultRate), 64); err != nil {
		log.Fatal("Invalid HEALTH_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyHealthDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid HEALTH_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	core := insights.Insights{
		Db: *dbInstance,
	}
	core.WithServices(insights.ServiceOpts{
		Metric:      core.GetIMetric(),
		Study:       core.GetIStudy(),
		Correlation: core.GetICorrelation(),
	})

	// the store must be fully populated before the first request is served
	if err := core.SeedDemoData(); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}

	aiClient := assistant.NewClientFromEnv()
	if aiClient.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set, chat endpoints will serve fallback answers")
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &insightsHttp.RestfulServer{
		Server:           gin.Default(),
		Core:             &core,
		Assistant:        aiClient,
		RateLimiterStore: insights.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
