package constants

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	ParamsKey    ContextKey = "params"
	PageCtxKey   ContextKey = "pageContext"
	RequestStart ContextKey = "requestStart"
	LocalizerKey ContextKey = "localizer"
	LocaleKey    ContextKey = "locale"
)
