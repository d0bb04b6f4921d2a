package event

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Retry configuration defaults
const (
	// DefaultMaxRetries is the default maximum number of retry attempts
	DefaultMaxRetries = 5

	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)
