package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// SendRequest represents the request body for a targeted send. Exactly one
// of device_id or token selects the target.
type SendRequest struct {
	DeviceID string            `json:"device_id,omitempty"`
	Token    string            `json:"token,omitempty"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
}

// BroadcastRequest represents the request body for a broadcast
type BroadcastRequest struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// SendResponse is the data payload of a successful targeted send.
type SendResponse struct {
	MessageID string `json:"message_id"`
}

// Send handles delivery to a single device or raw token
func (h *NotificationHandler) Send(c echo.Context) error {
	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if (req.DeviceID == "") == (req.Token == "") {
		return response.HandleAppError(c, domainerrors.ErrAmbiguousTarget)
	}

	payload := entity.Payload{Title: req.Title, Body: req.Body, Data: req.Data}
	ctx := c.Request().Context()

	var result usecase.SendResult
	var err error
	if req.DeviceID != "" {
		deviceID, parseErr := uuid.Parse(req.DeviceID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
		}
		result, err = h.notificationUC.SendToDevice(ctx, deviceID, payload)
	} else {
		result, err = h.notificationUC.SendToToken(ctx, entity.Token(req.Token), payload)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SendResponse{MessageID: result.MessageID}, "Notification sent successfully")
}

// Broadcast handles fan-out delivery to every deliverable device
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	result, err := h.notificationUC.Broadcast(
		c.Request().Context(),
		entity.Payload{Title: req.Title, Body: req.Body, Data: req.Data},
	)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Broadcast complete")
}
