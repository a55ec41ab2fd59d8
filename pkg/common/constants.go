package common

const (
	RequestIDHeader = "X-Request-Id"

	// MaxAttachmentBytes bounds a single uploaded file.
	MaxAttachmentBytes = 5 * 1024 * 1024
)
