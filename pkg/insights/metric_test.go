package insights

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"tryvital.xyz/health-insights-service/pkg/common"
	"tryvital.xyz/health-insights-service/pkg/models"
	_ "tryvital.xyz/health-insights-service/pkg/testing"
)

func TestGetMetricsByCategory(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	sleep, err := core.Metric.GetMetricsByCategory(DemoUserID, models.CategorySleep)
	require.NoError(t, err)
	assert.Len(t, sleep, 8)
	assert.Equal(t, "Deep Sleep", sleep[0].Name)
	assert.Equal(t, models.CategorySleep, sleep[0].Category)
	assert.Len(t, sleep[0].HistoricalData, 7)

	activity, err := core.Metric.GetMetricsByCategory(DemoUserID, models.CategoryActivity)
	require.NoError(t, err)
	assert.Len(t, activity, 5)

	cardio, err := core.Metric.GetMetricsByCategory(DemoUserID, models.CategoryCardiovascular)
	require.NoError(t, err)
	assert.Len(t, cardio, 5)

	stress, err := core.Metric.GetMetricsByCategory(DemoUserID, models.CategoryStress)
	require.NoError(t, err)
	assert.Len(t, stress, 5)
}

func TestGetMetricsByCategory_UnknownUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// unknown user is an empty result, not an error
	metrics, err := core.Metric.GetMetricsByCategory(999, models.CategorySleep)
	assert.NoError(t, err)
	assert.Empty(t, metrics)
}

func TestGetMetricByName(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	metric, err := core.Metric.GetMetricByName(DemoUserID, "Deep Sleep")
	require.NoError(t, err)
	require.NotNil(t, metric)
	assert.Equal(t, 1.8, metric.Value)
	assert.Equal(t, "hours", metric.Unit)
	// stored percentChange is authoritative even though it disagrees with
	// value/comparisonValue in the fixture
	assert.Equal(t, 11.6, metric.PercentChange)
	assert.Equal(t, 1.1, metric.ComparisonValue)

	missing, err := core.Metric.GetMetricByName(DemoUserID, "No Such Metric")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateMetric(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	userID := createTestUser(t, core)

	created, err := core.Metric.CreateMetric(&models.HealthMetric{
		UserID:         userID,
		Date:           time.Now().Truncate(time.Second),
		Category:       models.CategorySleep,
		Name:           "Sleep Latency",
		Value:          14,
		Unit:           "min",
		Status:         models.StatusSuccess,
		HistoricalData: models.FloatSeries{18, 16, 15, 14, 14, 13, 14},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	var saved models.HealthMetric
	err = core.Db.Conn.Where("user_id = ? AND name = ?", userID, "Sleep Latency").First(&saved).Error
	require.NoError(t, err)
	assert.Equal(t, created.Value, saved.Value)
	assert.Equal(t, models.FloatSeries{18, 16, 15, 14, 14, 13, 14}, saved.HistoricalData)
}

func TestCreateMetric_WithLog(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	userID := createTestUser(t, core)

	_, err := core.Metric.CreateMetric(&models.HealthMetric{
		UserID:   userID,
		Date:     time.Now(),
		Category: models.CategoryStress,
		Name:     "Mindfulness Minutes",
		Value:    12,
		Unit:     "min",
		Status:   models.StatusSuccess,
	})
	require.NoError(t, err)

	logs := ParseLogs(buf)

	found := false
	for _, log := range logs {
		lobj := log.(map[string]any)
		if lobj["category"] == "metric" &&
			lobj["logger"] == "insights_core" &&
			lobj["msg"] == "Created metric" &&
			lobj["metric"].(map[string]any)["name"] == "Mindfulness Minutes" {
			found = true
		}
	}
	assert.True(t, found, "log not found")
}

func TestCreateMetric_UnknownUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _, _, _ := GetMockInsightsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	_, err := core.Metric.CreateMetric(&models.HealthMetric{
		UserID:   987654,
		Date:     time.Now(),
		Category: models.CategorySleep,
		Name:     "Orphan Metric",
		Value:    1,
	})
	require.Error(t, err, "FOREIGN KEY constraint failed")
}
