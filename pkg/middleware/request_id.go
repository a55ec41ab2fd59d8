package middleware

import (
	"context"
	"regexp"

	"github.com/NeuralTrust/TrustDesk/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Caller supplied ids are echoed in logs, so only a safe charset is accepted.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

type requestIDMiddleware struct{}

func NewRequestIDMiddleware() Middleware {
	return &requestIDMiddleware{}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get(common.RequestIDHeader)
		if !validRequestID.MatchString(id) {
			id = uuid.New().String()
		}

		ctx.Locals(common.RequestIDContextKey, id)
		ctx.Set(common.RequestIDHeader, id)

		c := context.WithValue(ctx.UserContext(), common.RequestIDContextKey, id)
		ctx.SetUserContext(c)
		return ctx.Next()
	}
}

// RequestID returns the id assigned by the request id middleware, if any.
func RequestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(common.RequestIDContextKey).(string) //nolint:errcheck
	return id
}
