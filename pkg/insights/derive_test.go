package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"tryvital.xyz/health-insights-service/pkg/models"
	_ "tryvital.xyz/health-insights-service/pkg/testing"
)

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "text-green-500", StatusColor(models.StatusSuccess))
	assert.Equal(t, "text-amber-500", StatusColor(models.StatusWarning))
	assert.Equal(t, "text-red-500", StatusColor(models.StatusDanger))

	// unrecognized input defaults to the success token
	assert.Equal(t, "text-green-500", StatusColor(models.Status("bogus")))
	assert.Equal(t, "text-green-500", StatusColor(models.Status("")))
}

func TestProgressColor(t *testing.T) {
	assert.Equal(t, "bg-green-500", ProgressColor(models.StatusSuccess))
	assert.Equal(t, "bg-amber-500", ProgressColor(models.StatusWarning))
	assert.Equal(t, "bg-red-500", ProgressColor(models.StatusDanger))
	assert.Equal(t, "bg-green-500", ProgressColor(models.Status("bogus")))
}

func TestProgressWidth(t *testing.T) {
	// zero change still shows a half-full bar
	assert.Equal(t, 50.0, ProgressWidth(0))

	assert.Equal(t, 55.0, ProgressWidth(1))
	assert.Equal(t, 55.0, ProgressWidth(-1))
	assert.Equal(t, 75.0, ProgressWidth(5))

	// saturates at 95 for |percentChange| >= 9
	assert.Equal(t, 95.0, ProgressWidth(9))
	assert.Equal(t, 95.0, ProgressWidth(-9))
	assert.Equal(t, 95.0, ProgressWidth(1000))
}

func TestProgressWidth_Bounds(t *testing.T) {
	prev := 0.0
	for _, pc := range []float64{0, 0.5, 1, 2, 4, 8, 8.99, 9, 20, 100} {
		width := ProgressWidth(pc)
		assert.GreaterOrEqual(t, width, 50.0, "width below floor for %v", pc)
		assert.LessOrEqual(t, width, 95.0, "width above cap for %v", pc)
		assert.GreaterOrEqual(t, width, prev, "width not monotonic at %v", pc)
		prev = width
	}
}

func TestBaselineValue(t *testing.T) {
	// zero change implies baseline equals current
	for _, value := range []float64{0, 1, 1.8, 95, 9842} {
		assert.Equal(t, value, BaselineValue(value, 0))
	}

	assert.InDelta(t, 50.0, BaselineValue(100, 50), 1e-9)
	assert.InDelta(t, 110.0, BaselineValue(100, -10), 1e-9)
}

func metricWithChange(name string, percentChange float64) *models.HealthMetric {
	return &models.HealthMetric{Name: name, PercentChange: percentChange}
}

func TestMetricInterpretation(t *testing.T) {
	assert.Contains(t,
		MetricInterpretation(metricWithChange("Deep Sleep", 17.8)),
		"deep sleep showed significant improvement")
	assert.Contains(t,
		MetricInterpretation(metricWithChange("Deep Sleep", 11.6)),
		"deep sleep showed moderate improvement")
	assert.Contains(t,
		MetricInterpretation(metricWithChange("REM Sleep", -5.2)),
		"rem sleep decreased by 5.2%")
	assert.Contains(t,
		MetricInterpretation(metricWithChange("HRV", 0)),
		"hrv remained stable")
}

func TestMetricInterpretation_Boundary(t *testing.T) {
	// exactly 15 reads as moderate, the significant branch is strictly >15
	assert.Contains(t, MetricInterpretation(metricWithChange("Deep Sleep", 15)), "moderate improvement")
	assert.Contains(t, MetricInterpretation(metricWithChange("Deep Sleep", 15.1)), "significant improvement")
}

func TestTrendInterpretation(t *testing.T) {
	assert.Equal(t, "a positive response to the intervention.", TrendInterpretation(11.6))
	assert.Equal(t, "a potential area for further investigation.", TrendInterpretation(-5.2))
	assert.Equal(t, "consistent values throughout the measurement period.", TrendInterpretation(0))
}
