package insights

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
)

func (i *Insights) getMetricsByCategory(userID uint, category models.Category) ([]models.HealthMetric, error) {
	var metrics []models.HealthMetric
	err := i.Db.Conn.
		Where("user_id = ? AND category = ?", userID, category).
		Order("id asc").
		Find(&metrics).Error
	return metrics, err
}

// getMetricByName returns nil without error when no such metric exists;
// an unknown name is an expected outcome, not a failure.
func (i *Insights) getMetricByName(userID uint, name string) (*models.HealthMetric, error) {
	var metric models.HealthMetric
	err := i.Db.Conn.
		Where("user_id = ? AND name = ?", userID, name).
		First(&metric).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// createMetric is seed-only; metrics are immutable after startup.
func (i *Insights) createMetric(input *models.HealthMetric) (*models.HealthMetric, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInsightsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryMetric),
	)

	metric := models.HealthMetric{
		UserID:          input.UserID,
		Date:            input.Date,
		Category:        input.Category,
		Name:            input.Name,
		Value:           input.Value,
		Unit:            input.Unit,
		ComparisonValue: input.ComparisonValue,
		PercentChange:   input.PercentChange,
		Status:          input.Status,
		MinValue:        input.MinValue,
		MaxValue:        input.MaxValue,
		HistoricalData:  input.HistoricalData,
		Tooltip:         input.Tooltip,
	}

	if err := i.Db.Conn.Create(&metric).Error; err != nil {
		return nil, err
	}

	logger.Info("Created metric", zap.Reflect("metric", metric))
	return &metric, nil
}

type IMetricImpl struct {
	insights *Insights
}

func (im *IMetricImpl) GetMetricsByCategory(userID uint, category models.Category) ([]models.HealthMetric, error) {
	return im.insights.getMetricsByCategory(userID, category)
}

func (im *IMetricImpl) GetMetricByName(userID uint, name string) (*models.HealthMetric, error) {
	return im.insights.getMetricByName(userID, name)
}

func (im *IMetricImpl) CreateMetric(input *models.HealthMetric) (*models.HealthMetric, error) {
	return im.insights.createMetric(input)
}

func (i *Insights) GetIMetric() IMetric {
	return &IMetricImpl{insights: i}
}
