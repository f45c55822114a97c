package insights

import (
	"go.uber.org/zap"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
)

func (i *Insights) getCorrelationFactors(userID uint) ([]models.CorrelationFactor, error) {
	var factors []models.CorrelationFactor
	err := i.Db.Conn.
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&factors).Error
	return factors, err
}

func (i *Insights) createCorrelationFactor(input *models.CorrelationFactor) (*models.CorrelationFactor, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInsightsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryCorrelation),
	)

	factor := models.CorrelationFactor{
		UserID:      input.UserID,
		FactorName:  input.FactorName,
		LastTracked: input.LastTracked,
		Active:      input.Active,
		Metrics:     input.Metrics,
	}

	if err := i.Db.Conn.Create(&factor).Error; err != nil {
		return nil, err
	}

	logger.Info("Created correlation factor", zap.Reflect("factor", factor))
	return &factor, nil
}

type ICorrelationImpl struct {
	insights *Insights
}

func (ic *ICorrelationImpl) GetCorrelationFactors(userID uint) ([]models.CorrelationFactor, error) {
	return ic.insights.getCorrelationFactors(userID)
}

func (ic *ICorrelationImpl) CreateCorrelationFactor(input *models.CorrelationFactor) (*models.CorrelationFactor, error) {
	return ic.insights.createCorrelationFactor(input)
}

func (i *Insights) GetICorrelation() ICorrelation {
	return &ICorrelationImpl{insights: i}
}
