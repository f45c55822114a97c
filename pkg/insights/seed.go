package insights

import (
	"time"

	"go.uber.org/zap"
	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
)

// DemoUserID is the participant all demo fixtures belong to.
const DemoUserID uint = 1

// SeedDemoData populates the store once at process start. It is a no-op when
// the demo user already exists, so restarts against a file-backed store do
// not duplicate fixtures. Must complete before the server starts serving.
func (i *Insights) SeedDemoData() error {
	logger := common.GetLoggerWith(
		common.LoggerNameInsightsCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategorySeed),
	)

	var count int64
	if err := i.Db.Conn.Model(&models.User{}).Where("id = ?", DemoUserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Demo data already seeded, skipping")
		return nil
	}

	user := models.User{ID: DemoUserID, Username: "testuser", Password: "password"}
	if err := i.Db.Conn.Create(&user).Error; err != nil {
		return err
	}

	if _, err := i.Study.CreateStudyInfo(&models.StudyInfo{
		UserID:              DemoUserID,
		CurrentDay:          7,
		TotalDays:           30,
		DaysRemaining:       23,
		StudyName:           "Acupressure Mat For Better Sleep",
		Hypothesis:          "Using an acupressure mat for 20 minutes before bedtime will increase deep sleep duration by at least 30%.",
		PrimaryMetricName:   "Deep Sleep",
		GoalValue:           2.2,
		Significance:        0.031,
		TargetPercentChange: 30,
	}); err != nil {
		return err
	}

	now := time.Now()
	for _, m := range demoMetrics(now) {
		if _, err := i.Metric.CreateMetric(&m); err != nil {
			return err
		}
	}

	for _, f := range demoCorrelationFactors(now) {
		if _, err := i.Correlation.CreateCorrelationFactor(&f); err != nil {
			return err
		}
	}

	logger.Info("Seeded demo data for user", zap.Uint("userID", DemoUserID))
	return nil
}

func demoMetrics(date time.Time) []models.HealthMetric {
	sleep := []models.HealthMetric{
		{
			Category: models.CategorySleep, Name: "Deep Sleep", Value: 1.8, Unit: "hours",
			ComparisonValue: 1.1, PercentChange: 11.6, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 3,
			HistoricalData: models.FloatSeries{15, 12, 10, 8, 5, 7, 5},
			Tooltip:        "Deep sleep is essential for physical recovery and memory consolidation. Aim for 1.5-2 hours per night.",
		},
		{
			Category: models.CategorySleep, Name: "HRV", Value: 95, Unit: "ms",
			ComparisonValue: 52, PercentChange: 10.3, Status: models.StatusWarning,
			MinValue: 20, MaxValue: 150,
			HistoricalData: models.FloatSeries{10, 12, 8, 7, 11, 6, 9},
			Tooltip:        "Heart Rate Variability indicates autonomic nervous system health. Higher values typically indicate better recovery.",
		},
		{
			Category: models.CategorySleep, Name: "Breathing Rate", Value: 0.8, Unit: "bpm",
			ComparisonValue: 13, PercentChange: 8.3, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 20,
			HistoricalData: models.FloatSeries{10, 12, 14, 11, 13, 12, 11},
		},
		{
			Category: models.CategorySleep, Name: "Resting Heart Rate", Value: 68, Unit: "bpm",
			ComparisonValue: 70, PercentChange: 5.3, Status: models.StatusSuccess,
			MinValue: 40, MaxValue: 100,
			HistoricalData: models.FloatSeries{72, 71, 69, 68, 70, 67, 68},
		},
		{
			Category: models.CategorySleep, Name: "Sleep Efficiency", Value: 87, Unit: "%",
			ComparisonValue: 85, PercentChange: 2.6, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 100,
			HistoricalData: models.FloatSeries{82, 84, 83, 85, 86, 87, 87},
		},
		{
			Category: models.CategorySleep, Name: "Awake Time", Value: 0.8, Unit: "hours",
			ComparisonValue: 0.7, PercentChange: 2.9, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 3,
			HistoricalData: models.FloatSeries{0.9, 0.8, 1.0, 0.7, 0.6, 0.7, 0.8},
		},
		{
			Category: models.CategorySleep, Name: "REM Sleep", Value: 1.4, Unit: "hours",
			ComparisonValue: 1.5, PercentChange: 1.2, Status: models.StatusWarning,
			MinValue: 0, MaxValue: 3,
			HistoricalData: models.FloatSeries{1.3, 1.4, 1.5, 1.4, 1.3, 1.5, 1.4},
		},
		{
			Category: models.CategorySleep, Name: "Total Sleep", Value: 7.5, Unit: "hours",
			ComparisonValue: 7.2, PercentChange: 6.9, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 10,
			HistoricalData: models.FloatSeries{7.1, 7.3, 7.2, 7.4, 7.2, 7.6, 7.5},
		},
	}

	activity := []models.HealthMetric{
		{
			Category: models.CategoryActivity, Name: "Daily Steps", Value: 9842, Unit: "",
			ComparisonValue: 8608, PercentChange: 14.3, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 15000,
			HistoricalData: models.FloatSeries{12, 15, 10, 8, 5, 7, 3},
			Tooltip:        "10,000 steps daily is recommended for good cardiovascular health and weight management.",
		},
		{
			Category: models.CategoryActivity, Name: "Active Calories", Value: 486, Unit: "kcal",
			ComparisonValue: 432, PercentChange: 12.5, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 1000,
			HistoricalData: models.FloatSeries{450, 420, 470, 480, 500, 460, 486},
		},
		{
			Category: models.CategoryActivity, Name: "Activity Minutes", Value: 42, Unit: "min",
			ComparisonValue: 40, PercentChange: 4.8, Status: models.StatusWarning,
			MinValue: 0, MaxValue: 120,
			HistoricalData: models.FloatSeries{35, 40, 45, 38, 42, 44, 42},
		},
		{
			Category: models.CategoryActivity, Name: "Floors Climbed", Value: 11, Unit: "",
			ComparisonValue: 9, PercentChange: 22.2, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 30,
			HistoricalData: models.FloatSeries{8, 10, 9, 12, 11, 10, 11},
		},
		{
			Category: models.CategoryActivity, Name: "Distance", Value: 6.2, Unit: "km",
			ComparisonValue: 5.8, PercentChange: 7.1, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 15,
			HistoricalData: models.FloatSeries{5.5, 6, 5.8, 6.3, 5.9, 6.1, 6.2},
		},
	}

	cardiovascular := []models.HealthMetric{
		{
			Category: models.CategoryCardiovascular, Name: "VO₂ Max", Value: 42.5, Unit: "ml/kg/min",
			ComparisonValue: 39.8, PercentChange: 6.8, Status: models.StatusSuccess,
			MinValue: 30, MaxValue: 60,
			HistoricalData: models.FloatSeries{10, 12, 15, 10, 8, 7, 5},
			Tooltip:        "VO₂ Max represents the maximum amount of oxygen your body can use during exercise. Higher values indicate better cardiorespiratory fitness.",
		},
		{
			Category: models.CategoryCardiovascular, Name: "HR Recovery", Value: 32, Unit: "bpm",
			ComparisonValue: 29, PercentChange: 8.2, Status: models.StatusSuccess,
			MinValue: 10, MaxValue: 50,
			HistoricalData: models.FloatSeries{28, 30, 27, 31, 29, 33, 32},
		},
		{
			Category: models.CategoryCardiovascular, Name: "Zone Minutes", Value: 24, Unit: "min",
			ComparisonValue: 22, PercentChange: 3.5, Status: models.StatusWarning,
			MinValue: 0, MaxValue: 60,
			HistoricalData: models.FloatSeries{20, 18, 25, 22, 24, 21, 24},
		},
		{
			Category: models.CategoryCardiovascular, Name: "Blood Pressure", Value: 118, Unit: "",
			ComparisonValue: 120, PercentChange: -1.2, Status: models.StatusWarning,
			MinValue: 90, MaxValue: 140,
			HistoricalData: models.FloatSeries{122, 120, 119, 118, 121, 117, 118},
		},
		{
			Category: models.CategoryCardiovascular, Name: "Cardio Load", Value: 3.8, Unit: "",
			ComparisonValue: 3.6, PercentChange: 6.9, Status: models.StatusSuccess,
			MinValue: 1, MaxValue: 5,
			HistoricalData: models.FloatSeries{3.6, 3.7, 3.9, 3.5, 3.7, 3.8, 3.8},
		},
	}

	stress := []models.HealthMetric{
		{
			Category: models.CategoryStress, Name: "Stress Score", Value: 23, Unit: "",
			ComparisonValue: 26, PercentChange: -12.4, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 100,
			HistoricalData: models.FloatSeries{5, 8, 6, 4, 7, 5, 3},
			Tooltip:        "Stress Score combines heart rate variability, sleep quality, and activity levels to estimate your body's stress level. Lower scores indicate less stress.",
		},
		{
			Category: models.CategoryStress, Name: "Readiness", Value: 82, Unit: "",
			ComparisonValue: 75, PercentChange: 9.6, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 100,
			HistoricalData: models.FloatSeries{76, 78, 74, 80, 79, 81, 82},
		},
		{
			Category: models.CategoryStress, Name: "Recovery Time", Value: 5, Unit: "hours",
			ComparisonValue: 6, PercentChange: -16.7, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 24,
			HistoricalData: models.FloatSeries{7, 6, 5, 7, 6, 5, 5},
		},
		{
			Category: models.CategoryStress, Name: "Meditation", Value: 20, Unit: "min",
			ComparisonValue: 15, PercentChange: 33.3, Status: models.StatusSuccess,
			MinValue: 0, MaxValue: 60,
			HistoricalData: models.FloatSeries{15, 15, 20, 15, 20, 20, 20},
		},
		{
			Category: models.CategoryStress, Name: "Body Battery", Value: 74, Unit: "",
			ComparisonValue: 71, PercentChange: 4.2, Status: models.StatusWarning,
			MinValue: 0, MaxValue: 100,
			HistoricalData: models.FloatSeries{65, 70, 75, 68, 72, 71, 74},
		},
	}

	var all []models.HealthMetric
	for _, group := range [][]models.HealthMetric{sleep, activity, cardiovascular, stress} {
		for _, m := range group {
			m.UserID = DemoUserID
			m.Date = date
			all = append(all, m)
		}
	}
	return all
}

func demoCorrelationFactors(tracked time.Time) []models.CorrelationFactor {
	return []models.CorrelationFactor{
		{
			UserID:      DemoUserID,
			FactorName:  "Illness",
			LastTracked: tracked,
			Active:      true,
			Metrics: models.FactorMetrics{
				{Name: "Deep Sleep", PercentChange: 17.8, Status: models.StatusSuccess, Value: 1.8},
				{Name: "Heart Rate Variability", PercentChange: 10.7, Status: models.StatusWarning, Value: 95},
				{Name: "Breathing Rate", PercentChange: 6.2, Status: models.StatusSuccess, Value: 0.8},
				{Name: "REM Sleep", PercentChange: -5.2, Status: models.StatusDanger, Value: 1.4},
			},
		},
		{
			UserID:      DemoUserID,
			FactorName:  "Meditation",
			LastTracked: tracked,
			Active:      true,
			Metrics: models.FactorMetrics{
				{Name: "Deep Sleep", PercentChange: 17.8, Status: models.StatusSuccess, Value: 1.8},
				{Name: "Heart Rate Variability", PercentChange: 15.2, Status: models.StatusSuccess, Value: 95},
				{Name: "Breathing Rate", PercentChange: 6.2, Status: models.StatusSuccess, Value: 0.8},
				{Name: "REM Sleep", PercentChange: -5.2, Status: models.StatusDanger, Value: 1.4},
			},
		},
	}
}
