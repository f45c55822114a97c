package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tryvital.xyz/health-insights-service/pkg/assistant"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/insights"
	"tryvital.xyz/health-insights-service/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

// Fallbacks used when the collaborator or the store cannot supply real
// study context. The chat endpoints always answer something.
const (
	fallbackStudyName     = "your health study"
	fallbackPrimaryMetric = "Deep Sleep"
	fallbackCategory      = "sleep"

	apologyAnswer = "I'm sorry, there was an issue processing your question. Our team has been notified. Please try again later."
)

type CategoryPayload struct {
	ID      string                `json:"id"`
	Title   string                `json:"title"`
	Icon    string                `json:"icon"`
	Metrics []models.HealthMetric `json:"metrics"`
}

type HealthDataResponse struct {
	StudyInfo          *models.StudyInfo          `json:"studyInfo"`
	Categories         []CategoryPayload          `json:"categories"`
	CorrelationFactors []models.CorrelationFactor `json:"correlationFactors"`
}

var categoryTitles = map[models.Category]string{
	models.CategorySleep:          "Sleep",
	models.CategoryActivity:       "Activity",
	models.CategoryCardiovascular: "Cardiovascular Health",
	models.CategoryStress:         "Stress & Recovery",
}

var categoryIcons = map[models.Category]string{
	models.CategorySleep:          "moon",
	models.CategoryActivity:       "activity",
	models.CategoryCardiovascular: "heart",
	models.CategoryStress:         "diamond",
}

func (rs *RestfulServer) GetHealthData(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	// accepted for API compatibility, not used by any current query
	_ = c.DefaultQuery("period", "day")

	userID := insights.DemoUserID

	studyInfo, err := rs.Core.Study.GetStudyInfo(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch health data"})
		return
	}

	categories := make([]CategoryPayload, 0, len(models.Categories()))
	for _, category := range models.Categories() {
		metrics, err := rs.Core.Metric.GetMetricsByCategory(userID, category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch health data"})
			return
		}
		categories = append(categories, CategoryPayload{
			ID:      string(category),
			Title:   categoryTitles[category],
			Icon:    categoryIcons[category],
			Metrics: metrics,
		})
	}

	factors, err := rs.Core.Correlation.GetCorrelationFactors(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch health data"})
		return
	}

	c.JSON(http.StatusOK, HealthDataResponse{
		StudyInfo:          studyInfo,
		Categories:         categories,
		CorrelationFactors: factors,
	})
}

type MetricDisplay struct {
	StatusColor         string  `json:"statusColor"`
	ProgressColor       string  `json:"progressColor"`
	ProgressWidth       float64 `json:"progressWidth"`
	BaselineValue       float64 `json:"baselineValue"`
	Interpretation      string  `json:"interpretation"`
	TrendInterpretation string  `json:"trendInterpretation"`
}

type StudyFocusResponse struct {
	StudyInfo     *models.StudyInfo        `json:"studyInfo"`
	PrimaryMetric *models.HealthMetric     `json:"primaryMetric"`
	Evaluation    insights.StudyEvaluation `json:"evaluation"`
	Display       MetricDisplay            `json:"display"`
}

func (rs *RestfulServer) GetStudyFocus(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	userID := insights.DemoUserID

	info, err := rs.Core.Study.GetStudyInfo(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch study focus"})
		return
	}
	if info == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No study found for user"})
		return
	}

	primary, err := rs.Core.Metric.GetMetricByName(userID, info.PrimaryMetricName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch study focus"})
		return
	}
	if primary == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Primary metric not found"})
		return
	}

	c.JSON(http.StatusOK, StudyFocusResponse{
		StudyInfo:     info,
		PrimaryMetric: primary,
		Evaluation:    insights.EvaluateStudy(info, primary),
		Display: MetricDisplay{
			StatusColor:         insights.StatusColor(primary.Status),
			ProgressColor:       insights.ProgressColor(primary.Status),
			ProgressWidth:       insights.ProgressWidth(primary.PercentChange),
			BaselineValue:       insights.BaselineValue(primary.Value, primary.PercentChange),
			Interpretation:      insights.MetricInterpretation(primary),
			TrendInterpretation: insights.TrendInterpretation(primary.PercentChange),
		},
	})
}

type AskQuestionRequest struct {
	Question  string `json:"question"`
	StudyName string `json:"studyName"`
}

var askQuestionSchema = z.Struct(z.Shape{
	"Question":  z.String().Min(1).Required(),
	"StudyName": z.String(),
})

func (rs *RestfulServer) AskQuestion(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryChat),
	)

	var req AskQuestionRequest
	if err := askQuestionSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	studyName, details := rs.studyContext()
	if req.StudyName != "" {
		studyName = req.StudyName
	}

	answer, err := rs.Assistant.AnswerQuestion(c.Request.Context(), req.Question, studyName, details)
	if err != nil {
		// soft-fail: the caller always gets an answer, the failure goes to
		// the log for operational visibility
		logger.Error("Assistant failed to answer question", zap.Error(err))
		answer = apologyAnswer
	}

	c.JSON(http.StatusOK, gin.H{
		"question": req.Question,
		"answer":   answer,
	})
}

func (rs *RestfulServer) GetSuggestedQuestions(c *gin.Context) {
	if !rs.CheckClientLimiter(c.ClientIP()) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryChat),
	)

	studyName, details := rs.studyContext()
	if name := c.Query("studyName"); name != "" {
		studyName = name
	}
	metric := c.DefaultQuery("metric", details.PrimaryMetric)
	category := c.DefaultQuery("category", fallbackCategory)

	questions, err := rs.Assistant.SuggestQuestions(c.Request.Context(), studyName, metric, category)
	if err != nil || len(questions) == 0 {
		if err != nil {
			logger.Error("Assistant failed to suggest questions", zap.Error(err))
		}
		questions = assistant.FallbackQuestions(metric)
	}
	if len(questions) > assistant.MaxSuggestedQuestions {
		questions = questions[:assistant.MaxSuggestedQuestions]
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// studyContext loads the demo user's study parameters for prompt templating.
// Store misses degrade to fixed fallbacks rather than failing the chat path.
func (rs *RestfulServer) studyContext() (string, assistant.StudyDetails) {
	studyName := fallbackStudyName
	details := assistant.StudyDetails{PrimaryMetric: fallbackPrimaryMetric}

	info, err := rs.Core.Study.GetStudyInfo(insights.DemoUserID)
	if err != nil || info == nil {
		return studyName, details
	}

	studyName = info.StudyName
	details.PrimaryMetric = info.PrimaryMetricName
	details.Significance = info.Significance
	details.TotalDays = info.TotalDays
	details.GoalValue = info.GoalValue

	if primary, err := rs.Core.Metric.GetMetricByName(insights.DemoUserID, info.PrimaryMetricName); err == nil && primary != nil {
		details.PercentChange = primary.PercentChange
	}

	return studyName, details
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
