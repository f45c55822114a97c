package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Status is the three-value severity tag attached to a metric reading.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// Category enumerates the fixed metric groups shown on the dashboard.
type Category string

const (
	CategorySleep          Category = "sleep"
	CategoryActivity       Category = "activity"
	CategoryCardiovascular Category = "cardiovascular"
	CategoryStress         Category = "stress"
)

func Categories() []Category {
	return []Category{CategorySleep, CategoryActivity, CategoryCardiovascular, CategoryStress}
}

// FloatSeries is a bounded, oldest-first sample history stored as a JSON
// text column in sqlite.
type FloatSeries []float64

func (s FloatSeries) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *FloatSeries) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into FloatSeries", value)
	}
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`

	Metrics            []HealthMetric      `gorm:"foreignKey:UserID" json:"-"`
	StudyInfos         []StudyInfo         `gorm:"foreignKey:UserID" json:"-"`
	CorrelationFactors []CorrelationFactor `gorm:"foreignKey:UserID" json:"-"`
}

// HealthMetric is one tracked measurement with its baseline comparison.
// PercentChange is authoritative as stored; it is not recomputed from
// Value/ComparisonValue even when the two disagree in the seed data.
type HealthMetric struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          uint        `gorm:"index" json:"userId"`
	Date            time.Time   `json:"date"`
	Category        Category    `gorm:"type:varchar(20);index;check:category IN ('sleep','activity','cardiovascular','stress')" json:"category"`
	Name            string      `json:"name"`
	Value           float64     `json:"value"`
	Unit            string      `json:"unit"`
	ComparisonValue float64     `json:"comparisonValue"`
	PercentChange   float64     `json:"percentChange"`
	Status          Status      `gorm:"type:varchar(10);check:status IN ('success','warning','danger')" json:"status"`
	MinValue        float64     `json:"minValue"`
	MaxValue        float64     `json:"maxValue"`
	HistoricalData  FloatSeries `gorm:"type:text" json:"historicalData"`
	Tooltip         string      `json:"tooltip,omitempty"`
}

// StudyInfo describes the participant's current study, including the
// hypothesis parameters used by the evaluator.
type StudyInfo struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index" json:"userId"`
	CurrentDay    int    `json:"currentDay"`
	TotalDays     int    `json:"totalDays"`
	DaysRemaining int    `json:"daysRemaining"`
	StudyName     string `json:"studyName"`

	Hypothesis          string  `json:"hypothesis"`
	PrimaryMetricName   string  `json:"primaryMetricName"`
	GoalValue           float64 `json:"goalValue"`
	Significance        float64 `json:"significance"`
	TargetPercentChange float64 `json:"targetPercentChange"`
}

// FactorMetric is one affected metric listed under a correlation factor. It
// shares names with HealthMetric records only loosely.
type FactorMetric struct {
	Name          string  `json:"name"`
	PercentChange float64 `json:"percentChange"`
	Status        Status  `json:"status"`
	Value         float64 `json:"value"`
}

type FactorMetrics []FactorMetric

func (m FactorMetrics) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *FactorMetrics) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into FactorMetrics", value)
	}
}

// CorrelationFactor is a tracked external behavior presented alongside its
// apparent effect on a set of metrics. No causal inference is computed.
type CorrelationFactor struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      uint          `gorm:"index" json:"userId"`
	FactorName  string        `json:"factorName"`
	LastTracked time.Time     `json:"lastTracked"`
	Active      bool          `json:"status"`
	Metrics     FactorMetrics `gorm:"type:text" json:"metrics"`
}
