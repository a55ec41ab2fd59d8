package http

import (
	"errors"
	"io"
	"strings"

	"github.com/NeuralTrust/TrustDesk/pkg/app/pipeline"
	"github.com/NeuralTrust/TrustDesk/pkg/common"
	"github.com/NeuralTrust/TrustDesk/pkg/domain/classification"
	"github.com/NeuralTrust/TrustDesk/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustDesk/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustDesk/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const attachmentField = "attachment"

type processMessageHandler struct {
	logger       *logrus.Logger
	orchestrator pipeline.Orchestrator
}

func NewProcessMessageHandler(logger *logrus.Logger, orchestrator pipeline.Orchestrator) Handler {
	return &processMessageHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

// Handle @Summary Process a policyholder message
// @Description Sanitizes the message and optional attachment, then returns the assistant reply and its classification
// @Tags Messages
// @Accept json,mpfd
// @Produce json
// @Param message body request.ProcessMessageRequest true "Message"
// @Success 200 {object} pipeline.Result
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 502 {object} map[string]interface{} "Reasoning service error"
// @Failure 503 {object} map[string]interface{} "Reasoning service unavailable"
// @Router /api/v1/messages [post]
func (h *processMessageHandler) Handle(c *fiber.Ctx) error {
	req, err := h.parse(c)
	if err != nil {
		h.logger.WithError(err).WithField("request_id", middleware.RequestID(c)).Warn("invalid message request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.orchestrator.Process(c.UserContext(), *req)
	if err != nil {
		status, publicErr := mapError(err)
		h.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.RequestID(c),
			"status":     status,
		}).Error("failed to process message")
		return c.Status(status).JSON(fiber.Map{"error": publicErr.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *processMessageHandler) parse(c *fiber.Ctx) (*pipeline.Request, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))

	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		var body request.ProcessMessageRequest
		if err := c.BodyParser(&body); err != nil {
			return nil, ErrInvalidJsonPayload
		}
		if err := body.Validate(); err != nil {
			return nil, ErrEmptyMessage
		}
		return &pipeline.Request{Message: body.Message}, nil

	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		return h.parseMultipart(c)

	default:
		return nil, ErrUnsupportedMedia
	}
}

func (h *processMessageHandler) parseMultipart(c *fiber.Ctx) (*pipeline.Request, error) {
	body := request.ProcessMessageRequest{Message: c.FormValue("message")}
	if err := body.Validate(); err != nil {
		return nil, ErrEmptyMessage
	}
	req := &pipeline.Request{Message: body.Message}

	fileHeader, err := c.FormFile(attachmentField)
	if err != nil {
		// no attachment part
		return req, nil
	}
	if fileHeader.Size > common.MaxAttachmentBytes {
		return nil, ErrAttachmentTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, ErrInvalidMultipart
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, common.MaxAttachmentBytes+1))
	if err != nil {
		return nil, ErrInvalidMultipart
	}
	if len(data) > common.MaxAttachmentBytes {
		return nil, ErrAttachmentTooLarge
	}

	req.Attachment = data
	req.AttachmentName = fileHeader.Filename
	return req, nil
}

func mapError(err error) (int, error) {
	switch {
	case errors.Is(err, classification.ErrSchemaDecode):
		return fiber.StatusBadGateway, ErrReasoningDecode
	case httpx.IsOpen(err):
		return fiber.StatusServiceUnavailable, ErrReasoningUnavailable
	default:
		return fiber.StatusBadGateway, ErrReasoningFailed
	}
}
