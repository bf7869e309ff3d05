package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/internal/delivery/http/response"
	"beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistrationHandler_Register_Created(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: uc, logger: testLogger()}
	c, rec := newTestContext(t, http.MethodPost, "/api/register",
		`{"token":"fcm-token-1","installation_id":"install-1","platform":"android","app_version":"1.2.0"}`)

	deviceID := uuid.New()
	registeredAt := time.Now().UTC()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegistrationInput{
			Token:          "fcm-token-1",
			InstallationID: "install-1",
			Platform:       "android",
			AppVersion:     "1.2.0",
		}).
		Return(entity.DeviceRecord{
			DeviceID:     deviceID,
			Token:        "fcm-token-1",
			Status:       entity.StatusActive,
			RegisteredAt: registeredAt,
		}, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, deviceID.String(), data["device_id"])
	assert.Equal(t, "active", data["status"])
	assert.NotContains(t, rec.Body.String(), "fcm-token-1", "full token never leaves the server")
}

func TestRegistrationHandler_Register_MissingFields(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		input    usecase.RegistrationInput
		ucErr    error
		wantCode string
	}{
		{
			name:     "no token",
			body:     `{"installation_id":"install-1"}`,
			input:    usecase.RegistrationInput{InstallationID: "install-1"},
			ucErr:    domainerrors.ErrMissingToken,
			wantCode: "MISSING_TOKEN",
		},
		{
			name:     "no installation id",
			body:     `{"token":"fcm-token-1"}`,
			input:    usecase.RegistrationInput{Token: "fcm-token-1"},
			ucErr:    domainerrors.ErrMissingIdentity,
			wantCode: "MISSING_IDENTITY",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := mockUsecase.NewMockRegistrationUsecase(t)
			h := &RegistrationHandler{registrationUC: uc, logger: testLogger()}
			c, rec := newTestContext(t, http.MethodPost, "/api/register", tc.body)

			uc.EXPECT().
				Register(mock.Anything, tc.input).
				Return(entity.DeviceRecord{}, tc.ucErr)

			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeResponse(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantCode, resp.Error.Code)
		})
	}
}

func TestRegistrationHandler_Register_InvalidPlatform(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: uc, logger: testLogger()}
	c, rec := newTestContext(t, http.MethodPost, "/api/register",
		`{"token":"fcm-token-1","installation_id":"install-1","platform":"blackberry"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegistrationHandler_ListDevices(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: uc, logger: testLogger()}
	c, rec := newTestContext(t, http.MethodGet, "/api/devices", "")

	uc.EXPECT().
		ListDevices(mock.Anything).
		Return([]usecase.DeviceSummary{
			{DeviceID: uuid.New(), Platform: "ios", Status: entity.StatusActive, TokenPrefix: "fcm-token-1f"},
			{DeviceID: uuid.New(), Platform: "android", Status: entity.StatusInvalid, TokenPrefix: "fcm-token-2a"},
		}, nil)

	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), data["total"])
	devices, ok := data["devices"].([]any)
	require.True(t, ok)
	assert.Len(t, devices, 2)
}

func TestRegistrationHandler_ListDevices_Empty(t *testing.T) {
	uc := mockUsecase.NewMockRegistrationUsecase(t)
	h := &RegistrationHandler{registrationUC: uc, logger: testLogger()}
	c, rec := newTestContext(t, http.MethodGet, "/api/devices", "")

	uc.EXPECT().
		ListDevices(mock.Anything).
		Return([]usecase.DeviceSummary{}, nil)

	require.NoError(t, h.ListDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(0), data["total"])
}
