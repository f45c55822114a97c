package assistant

import "fmt"

const MaxSuggestedQuestions = 5

// EmptyAnswerText is returned when the completion service answers with no
// content at all; this is not an error at the contract level.
const EmptyAnswerText = "I apologize, but I couldn't generate a response. Please try asking your question differently."

func systemPrompt(studyName string, details StudyDetails) string {
	return fmt.Sprintf(`You are an AI assistant for a health study platform called Tryvital. Your role is to answer questions from study participants about their health metrics and study results.

Study Information:
- Study Name: %s
- Primary Metric: %s
- Study Duration: %d days
- Percent Change in Primary Metric: %v%%
- Statistical Significance: p = %v
- Goal Value: %v

Guidelines:
1. Be conversational, friendly, and encouraging
2. Explain technical concepts in simple terms that non-medical participants can understand
3. Use evidence-based information when answering health questions
4. When discussing study results, emphasize what the numbers mean practically for their health
5. If you don't know something specific about their personal health data, be honest and suggest they consult with a healthcare professional
6. Keep responses concise, generally 2-4 sentences
7. Never make up information about the study that wasn't provided

IMPORTANT: Remember that your answers affect how participants understand their health. Be accurate, evidence-based, and responsible with your explanations.`,
		studyName, details.PrimaryMetric, details.TotalDays,
		details.PercentChange, details.Significance, details.GoalValue)
}

func suggestionsPrompt(studyName, primaryMetric, category string) string {
	return fmt.Sprintf(`Based on a health study called "%s" with a primary metric of "%s" in the category of "%s", generate 5 questions that a study participant might want to ask. Make the questions specific, practical, and focused on understanding their results or how to improve their health in this area. Each question should be a single sentence and focus only on %s or related %s metrics. Respond with a JSON object of the form {"questions": ["..."]}.`,
		studyName, primaryMetric, category, primaryMetric, category)
}

// FallbackQuestions is the fixed list served when the completion service is
// unavailable or returns nothing usable.
func FallbackQuestions(primaryMetric string) []string {
	return []string{
		fmt.Sprintf("How can I improve my %s?", primaryMetric),
		fmt.Sprintf("What does %s tell me about my health?", primaryMetric),
		fmt.Sprintf("Are my %s results normal?", primaryMetric),
		fmt.Sprintf("How often should I monitor my %s?", primaryMetric),
		fmt.Sprintf("What lifestyle changes affect %s the most?", primaryMetric),
	}
}
