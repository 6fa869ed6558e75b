package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeDebug       = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// RequestIDKey is the context key the HTTP layer stores the request id under.
type RequestIDKey struct{}
