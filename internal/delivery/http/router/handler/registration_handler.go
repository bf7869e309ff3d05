// Package handler contains the echo handlers for the HTTP surface.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler holds dependencies for registration-related handlers
type RegistrationHandler struct {
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// RegisterRequest represents the request body for registering a device.
// Token and installation ID presence is checked by the registration usecase
// so the error codes distinguish which one is missing.
type RegisterRequest struct {
	Token          string `json:"token"`
	InstallationID string `json:"installation_id"`
	Platform       string `json:"platform" validate:"omitempty,oneof=ios android web"`
	AppVersion     string `json:"app_version"`
}

// RegisterResponse is the data payload returned after a registration.
type RegisterResponse struct {
	DeviceID     string    `json:"device_id"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
}

// ListDevicesResponse is the data payload of the device listing.
type ListDevicesResponse struct {
	Devices []usecase.DeviceSummary `json:"devices"`
	Total   int                     `json:"total"`
}

// Register handles device registration
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := h.registrationUC.Register(c.Request().Context(), usecase.RegistrationInput{
		Token:          req.Token,
		InstallationID: req.InstallationID,
		Platform:       req.Platform,
		AppVersion:     req.AppVersion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, RegisterResponse{
		DeviceID:     record.DeviceID.String(),
		RegisteredAt: record.RegisteredAt,
		Status:       string(record.Status),
	}, "Device registered successfully")
}

// ListDevices handles retrieving all registered devices
func (h *RegistrationHandler) ListDevices(c echo.Context) error {
	summaries, err := h.registrationUC.ListDevices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ListDevicesResponse{
		Devices: summaries,
		Total:   len(summaries),
	}, "Devices retrieved successfully")
}
