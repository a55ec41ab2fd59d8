package http

import "errors"

var (
	ErrInvalidJsonPayload   = errors.New("invalid json payload")
	ErrInvalidMultipart     = errors.New("invalid multipart form")
	ErrEmptyMessage         = errors.New("message is required")
	ErrAttachmentTooLarge   = errors.New("attachment is too large")
	ErrUnsupportedMedia     = errors.New("content type must be application/json or multipart/form-data")
	ErrReasoningDecode      = errors.New("reasoning service returned an invalid classification")
	ErrReasoningUnavailable = errors.New("reasoning service is temporarily unavailable")
	ErrReasoningFailed      = errors.New("reasoning service call failed")
)
