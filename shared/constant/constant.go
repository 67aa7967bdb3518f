package constant

const (
	RequestParamID = "id"
)

const (
	// ListLimit caps the number of todos returned by a list call.
	ListLimit = 50
)

const (
	SortDirAsc = "ASC"
)

const (
	FieldCreatedAt = "created_at"
)

const (
	// DateFormat renders timestamps like a JavaScript ISO string (millisecond precision).
	DateFormat = "2006-01-02T15:04:05.000Z07:00"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelHTTPScopeName       = "http"

	OtelQueryAttributeKey = "query"
)

const (
	OtelExporterOTLP   = "otlp"
	OtelExporterStdout = "stdout"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseStatusSuccess = "success"
	ResponseStatusFail    = "fail"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)
