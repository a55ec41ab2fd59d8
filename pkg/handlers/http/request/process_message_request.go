package request

import (
	"errors"
	"strings"
)

type ProcessMessageRequest struct {
	Message string `json:"message" form:"message"`
}

func (r *ProcessMessageRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	return nil
}
