package insights

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
)

// getStudyInfo returns nil without error when the user has no study; absent
// is a valid, expected outcome.
func (i *Insights) getStudyInfo(userID uint) (*models.StudyInfo, error) {
	var info models.StudyInfo
	err := i.Db.Conn.First(&info, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (i *Insights) createStudyInfo(input *models.StudyInfo) (*models.StudyInfo, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInsightsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStudy),
	)

	info := models.StudyInfo{
		UserID:              input.UserID,
		CurrentDay:          input.CurrentDay,
		TotalDays:           input.TotalDays,
		DaysRemaining:       input.DaysRemaining,
		StudyName:           input.StudyName,
		Hypothesis:          input.Hypothesis,
		PrimaryMetricName:   input.PrimaryMetricName,
		GoalValue:           input.GoalValue,
		Significance:        input.Significance,
		TargetPercentChange: input.TargetPercentChange,
	}

	if err := i.Db.Conn.Create(&info).Error; err != nil {
		return nil, err
	}

	logger.Info("Created study info", zap.Reflect("studyInfo", info))
	return &info, nil
}

type IStudyImpl struct {
	insights *Insights
}

func (is *IStudyImpl) GetStudyInfo(userID uint) (*models.StudyInfo, error) {
	return is.insights.getStudyInfo(userID)
}

func (is *IStudyImpl) CreateStudyInfo(input *models.StudyInfo) (*models.StudyInfo, error) {
	return is.insights.createStudyInfo(input)
}

func (i *Insights) GetIStudy() IStudy {
	return &IStudyImpl{insights: i}
}
