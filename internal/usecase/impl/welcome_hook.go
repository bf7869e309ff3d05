package impl

import (
	"context"

	"beacon/config"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/errors"
	"beacon/internal/usecase"
)

const (
	defaultWelcomeTitle = "Welcome!"
	defaultWelcomeBody  = "Your device is now registered for notifications."
)

type welcomeHook struct {
	dispatcher usecase.Dispatcher
	title      string
	body       string
}

// NewWelcomeHook creates the post-registration hook that greets a freshly
// registered device through the push gateway. The send runs synchronously
// through the dispatcher so the caller observes delivery errors.
func NewWelcomeHook(cfg *config.WelcomeConfig, dispatcher usecase.Dispatcher) service.PostRegistrationHook {
	title := cfg.Title
	if title == "" {
		title = defaultWelcomeTitle
	}
	body := cfg.Body
	if body == "" {
		body = defaultWelcomeBody
	}

	return &welcomeHook{
		dispatcher: dispatcher,
		title:      title,
		body:       body,
	}
}

func (h *welcomeHook) AfterRegister(ctx context.Context, record entity.DeviceRecord) error {
	payload := entity.Payload{
		Title: h.title,
		Body:  h.body,
		Data:  map[string]string{"action": "welcome"},
	}

	// The record was upserted moments ago; send straight to its token
	// instead of re-reading the registry.
	if _, err := h.dispatcher.SendToToken(ctx, record.Token, payload); err != nil {
		return errors.Wrap(err, "send welcome notification")
	}

	return nil
}
