package assistant

import "context"

//go:generate mockgen -source=assistant.go -destination=mocks/mocks.go -package=mocks

// StudyDetails is the study context templated into the answer prompt.
type StudyDetails struct {
	PrimaryMetric string
	PercentChange float64
	Significance  float64
	TotalDays     int
	GoalValue     float64
}

// Assistant answers participant questions about study results. Both calls
// block on an external completion service; callers own the fallback policy
// when an error comes back.
type Assistant interface {
	AnswerQuestion(ctx context.Context, question string, studyName string, details StudyDetails) (string, error)
	SuggestQuestions(ctx context.Context, studyName string, primaryMetric string, category string) ([]string, error)
}
