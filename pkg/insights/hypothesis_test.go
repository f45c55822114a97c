package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tryvital.xyz/health-insights-service/pkg/models"
	_ "tryvital.xyz/health-insights-service/pkg/testing"
)

func TestEvaluateHypothesis(t *testing.T) {
	// significance boundary is inclusive, hitting the target exactly is strong
	assert.Equal(t, OutcomeStrongImprovement, EvaluateHypothesis(0.05, 30, 30))

	// insignificant results give no clear benefit regardless of effect size
	assert.Equal(t, OutcomeNoClearBenefit, EvaluateHypothesis(0.0501, 60, 30))

	// significant but short of target
	assert.Equal(t, OutcomeModerateImprovement, EvaluateHypothesis(0.01, 15, 30))

	assert.Equal(t, OutcomeStrongImprovement, EvaluateHypothesis(0.001, 45, 30))
	assert.Equal(t, OutcomeNoClearBenefit, EvaluateHypothesis(0.9, 1, 30))
}

func TestPercentOfTargetAchieved(t *testing.T) {
	pct, ok := PercentOfTargetAchieved(15, 30)
	assert.True(t, ok)
	assert.Equal(t, 50, pct)

	pct, ok = PercentOfTargetAchieved(30, 30)
	assert.True(t, ok)
	assert.Equal(t, 100, pct)

	pct, ok = PercentOfTargetAchieved(11.6, 30)
	assert.True(t, ok)
	assert.Equal(t, 39, pct)

	// zero target is explicitly non-applicable, not a division by zero
	pct, ok = PercentOfTargetAchieved(15, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, pct)
}

func TestPercentToGoal(t *testing.T) {
	pct, ok := PercentToGoal(1.8, 2.2)
	assert.True(t, ok)
	assert.Equal(t, 82, pct)

	// capped at 100 when past the goal
	pct, ok = PercentToGoal(5, 2.2)
	assert.True(t, ok)
	assert.Equal(t, 100, pct)

	_, ok = PercentToGoal(1.8, 0)
	assert.False(t, ok)
}

func TestEvaluateStudy(t *testing.T) {
	info := &models.StudyInfo{
		StudyName:           "Acupressure Mat For Better Sleep",
		TotalDays:           30,
		PrimaryMetricName:   "Deep Sleep",
		GoalValue:           2.2,
		Significance:        0.031,
		TargetPercentChange: 30,
	}
	primary := &models.HealthMetric{
		Name:          "Deep Sleep",
		Value:         1.8,
		PercentChange: 11.6,
		Status:        models.StatusSuccess,
	}

	eval := EvaluateStudy(info, primary)

	assert.Equal(t, OutcomeModerateImprovement, eval.Outcome)
	assert.True(t, eval.Supported)

	require.NotNil(t, eval.PercentOfTargetAchieved)
	assert.Equal(t, 39, *eval.PercentOfTargetAchieved)

	require.NotNil(t, eval.PercentToGoal)
	assert.Equal(t, 82, *eval.PercentToGoal)

	assert.Contains(t, eval.StatisticalNote, "supporting our hypothesis")
	assert.Contains(t, eval.StatisticalNote, "deep sleep")
}

func TestEvaluateStudy_NotSupported(t *testing.T) {
	info := &models.StudyInfo{
		PrimaryMetricName:   "REM Sleep",
		GoalValue:           2,
		Significance:        0.2,
		TargetPercentChange: 30,
	}
	primary := &models.HealthMetric{
		Name:          "REM Sleep",
		Value:         1.4,
		PercentChange: -5.2,
		Status:        models.StatusDanger,
	}

	eval := EvaluateStudy(info, primary)

	assert.Equal(t, OutcomeNoClearBenefit, eval.Outcome)
	assert.False(t, eval.Supported)
	assert.Contains(t, eval.StatisticalNote, "failing to support our hypothesis")
}

func TestEvaluateStudy_ZeroTarget(t *testing.T) {
	info := &models.StudyInfo{
		PrimaryMetricName: "Deep Sleep",
		Significance:      0.01,
	}
	primary := &models.HealthMetric{Name: "Deep Sleep", Value: 1.8, PercentChange: 11.6}

	eval := EvaluateStudy(info, primary)

	// zero target and goal leave the display ratios unset
	assert.Nil(t, eval.PercentOfTargetAchieved)
	assert.Nil(t, eval.PercentToGoal)
	assert.Equal(t, OutcomeStrongImprovement, eval.Outcome)
}
