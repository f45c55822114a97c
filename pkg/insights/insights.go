package insights

import (
	"tryvital.xyz/health-insights-service/pkg/db"
	"tryvital.xyz/health-insights-service/pkg/models"
)

//go:generate mockgen -source=insights.go -destination=mocks/mocks.go -package=mocks

type IMetric interface {
	GetMetricsByCategory(userID uint, category models.Category) ([]models.HealthMetric, error)
	GetMetricByName(userID uint, name string) (*models.HealthMetric, error)
	CreateMetric(input *models.HealthMetric) (*models.HealthMetric, error)
}

type IStudy interface {
	GetStudyInfo(userID uint) (*models.StudyInfo, error)
	CreateStudyInfo(input *models.StudyInfo) (*models.StudyInfo, error)
}

type ICorrelation interface {
	GetCorrelationFactors(userID uint) ([]models.CorrelationFactor, error)
	CreateCorrelationFactor(input *models.CorrelationFactor) (*models.CorrelationFactor, error)
}

type Insights struct {
	Db          db.DB
	Metric      IMetric
	Study       IStudy
	Correlation ICorrelation
}

type ServiceOpts struct {
	Metric      IMetric
	Study       IStudy
	Correlation ICorrelation
}

func (i *Insights) WithServices(opts ServiceOpts) *Insights {
	if opts.Metric != nil {
		i.Metric = opts.Metric
	}
	if opts.Study != nil {
		i.Study = opts.Study
	}
	if opts.Correlation != nil {
		i.Correlation = opts.Correlation
	}
	return i
}
