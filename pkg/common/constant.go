package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyHealthDBType string = "HEALTH_DB_TYPE"
	EnvKeyHealthDbPath string = "HEALTH_DB_PATH"

	EnvKeyHealthHttpHostPort string = "HEALTH_HTTP_HOST_PORT"

	EnvKeyHealthDefaultRate  string = "HEALTH_DEFAULT_RATE"
	EnvKeyHealthDefaultBurst string = "HEALTH_DEFAULT_BURST"

	EnvKeyOpenAIAPIKey  string = "OPENAI_API_KEY"
	EnvKeyOpenAIBaseURL string = "OPENAI_BASE_URL"
	EnvKeyOpenAIModel   string = "OPENAI_MODEL"

	LoggerNameInsightsCore  string = "insights_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameAssistant     string = "assistant"

	LoggerFieldCategory string = "category"

	LoggerCategoryMetric      string = "metric"
	LoggerCategoryStudy       string = "study"
	LoggerCategoryCorrelation string = "correlation"
	LoggerCategorySeed        string = "seed"
	LoggerCategoryChat        string = "chat"
)
