package response

const (
	MessageSuccess = "Success"

	// DateTimeFormat is how timestamps leave the API: UTC, second precision.
	DateTimeFormat = "2006-01-02T15:04:05Z"
)
