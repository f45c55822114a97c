package insights

import (
	"fmt"
	"math"
	"strings"

	"tryvital.xyz/health-insights-service/pkg/models"
)

// Derived-metrics calculator: pure display helpers over a metric's stored
// fields. None of these functions can fail.

// StatusColor maps a status tag to its text color token. Unrecognized input
// falls back to the success token.
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusSuccess:
		return "text-green-500"
	case models.StatusWarning:
		return "text-amber-500"
	case models.StatusDanger:
		return "text-red-500"
	default:
		return "text-green-500"
	}
}

// ProgressColor maps a status tag to its background color token.
func ProgressColor(status models.Status) string {
	switch status {
	case models.StatusSuccess:
		return "bg-green-500"
	case models.StatusWarning:
		return "bg-amber-500"
	case models.StatusDanger:
		return "bg-red-500"
	default:
		return "bg-green-500"
	}
}

// ProgressWidth maps an unbounded percent change onto a bar width in
// [50, 95]. A 0% change yields exactly 50; the always-half-full floor is
// intentional.
func ProgressWidth(percentChange float64) float64 {
	return math.Min(math.Abs(percentChange)*5+50, 95)
}

// BaselineValue inverts the percent-change formula to redisplay an implied
// baseline. Exact only when percentChange was actually computed from value
// and baseline; stored percentChange stays authoritative either way.
func BaselineValue(value float64, percentChange float64) float64 {
	return value - value*percentChange/100
}

// MetricInterpretation renders the canned sentence for a metric's change.
// The 15% boundary is exclusive: exactly 15 reads as moderate.
func MetricInterpretation(metric *models.HealthMetric) string {
	name := strings.ToLower(metric.Name)
	if metric.PercentChange > 15 {
		return fmt.Sprintf(
			"Your %s showed significant improvement during the study, with a %.1f%% increase from your baseline measurements.",
			name, metric.PercentChange,
		)
	} else if metric.PercentChange > 0 {
		return fmt.Sprintf(
			"Your %s showed moderate improvement during the study, with a %.1f%% increase from your baseline.",
			name, metric.PercentChange,
		)
	} else if metric.PercentChange < 0 {
		return fmt.Sprintf(
			"Your %s decreased by %.1f%% during the study period.",
			name, math.Abs(metric.PercentChange),
		)
	}
	return fmt.Sprintf("Your %s remained stable throughout the study period.", name)
}

// TrendInterpretation renders the canned phrase for a trend direction.
func TrendInterpretation(percentChange float64) string {
	if percentChange > 0 {
		return "a positive response to the intervention."
	} else if percentChange < 0 {
		return "a potential area for further investigation."
	}
	return "consistent values throughout the measurement period."
}
