package insights

import (
	"fmt"
	"math"
	"strings"

	"tryvital.xyz/health-insights-service/pkg/models"
)

// HypothesisOutcome is the one-shot classification of a study's primary
// metric against its significance gate and effect-size target.
type HypothesisOutcome string

const (
	OutcomeStrongImprovement   HypothesisOutcome = "strong-improvement"
	OutcomeModerateImprovement HypothesisOutcome = "moderate-improvement"
	OutcomeNoClearBenefit      HypothesisOutcome = "no-clear-benefit"
)

// SignificanceThreshold gates whether any claim can be made at all before
// effect size is interpreted.
const SignificanceThreshold = 0.05

// EvaluateHypothesis classifies an observed percent change. Significance at
// exactly the threshold still counts (<=), and hitting the target exactly
// counts as strong (>=).
func EvaluateHypothesis(significance, observedChange, targetChange float64) HypothesisOutcome {
	if significance > SignificanceThreshold {
		return OutcomeNoClearBenefit
	}
	if observedChange >= targetChange {
		return OutcomeStrongImprovement
	}
	return OutcomeModerateImprovement
}

// PercentOfTargetAchieved reports how much of the target change was observed,
// rounded to whole percent. A zero target makes the ratio undefined; the
// second return is false in that case and the value must be ignored.
func PercentOfTargetAchieved(observedChange, targetChange float64) (int, bool) {
	if targetChange == 0 {
		return 0, false
	}
	return int(math.Round(observedChange / targetChange * 100)), true
}

// PercentToGoal reports progress of the current value toward the goal value,
// capped at 100. A non-positive goal is treated the same as a zero target.
func PercentToGoal(value, goalValue float64) (int, bool) {
	if goalValue <= 0 {
		return 0, false
	}
	pct := int(math.Round(value / goalValue * 100))
	if pct > 100 {
		pct = 100
	}
	return pct, true
}

// StudyEvaluation bundles the evaluator output with the display helpers the
// study focus panel needs.
type StudyEvaluation struct {
	Outcome                 HypothesisOutcome `json:"outcome"`
	Supported               bool              `json:"supported"`
	PercentOfTargetAchieved *int              `json:"percentOfTargetAchieved,omitempty"`
	PercentToGoal           *int              `json:"percentToGoal,omitempty"`
	StatisticalNote         string            `json:"statisticalNote"`
}

// EvaluateStudy classifies the primary metric's outcome for a study. The
// supported flag additionally requires a positive observed change, matching
// the badge shown on the dashboard.
func EvaluateStudy(info *models.StudyInfo, primary *models.HealthMetric) StudyEvaluation {
	eval := StudyEvaluation{
		Outcome: EvaluateHypothesis(info.Significance, primary.PercentChange, info.TargetPercentChange),
	}
	eval.Supported = primary.PercentChange > 0 && info.Significance <= SignificanceThreshold

	if pct, ok := PercentOfTargetAchieved(primary.PercentChange, info.TargetPercentChange); ok {
		eval.PercentOfTargetAchieved = &pct
	}
	if pct, ok := PercentToGoal(primary.Value, info.GoalValue); ok {
		eval.PercentToGoal = &pct
	}

	name := strings.ToLower(primary.Name)
	if eval.Supported {
		eval.StatisticalNote = fmt.Sprintf(
			"The data shows a statistically significant improvement in %s (p=%v), supporting our hypothesis.",
			name, info.Significance,
		)
	} else {
		eval.StatisticalNote = fmt.Sprintf(
			"The data does not show a statistically significant improvement in %s (p=%v), failing to support our hypothesis.",
			name, info.Significance,
		)
	}

	return eval
}
