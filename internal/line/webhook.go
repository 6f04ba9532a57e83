package line

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// signatureHeader carries the platform's HMAC of the raw request body.
const signatureHeader = "X-Line-Signature"

// EventHandler processes webhook events. The method set mirrors the
// closed set of event types the bot reacts to; anything else is skipped
// by the webhook before dispatch.
type EventHandler interface {
	HandleMessage(ctx context.Context, ev Event) error
	HandleJoin(ctx context.Context, ev Event) error
	HandleLeave(ctx context.Context, ev Event) error
}

// Webhook verifies, parses and dispatches inbound webhook requests.
type Webhook struct {
	secret  string
	handler EventHandler
	log     *logrus.Logger
}

// NewWebhook creates a webhook bound to the channel secret and handler.
func NewWebhook(secret string, handler EventHandler, log *logrus.Logger) *Webhook {
	return &Webhook{secret: secret, handler: handler, log: log}
}

// RegisterRoutes mounts the webhook endpoint on the given router.
func RegisterRoutes(r chi.Router, wh *Webhook) {
	r.Post("/callback", wh.HandleCallback)
}

// HandleCallback handles one webhook delivery: signature check first,
// then parsing, then in-order dispatch of each event. Any handler error
// aborts the batch with a 500.
func (wh *Webhook) HandleCallback(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// The platform does not send a delivery identifier; generate one to
	// correlate the log lines of a single batch.
	delivery := uuid.NewString()
	logger := wh.log.WithField("delivery", delivery)

	signature := r.Header.Get(signatureHeader)
	if err := ValidateSignature(wh.secret, body, signature); err != nil {
		logger.WithError(err).Error("webhook authentication failed")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := ParseRequest(body)
	if err != nil {
		logger.WithError(err).Warn("webhook body is not a valid event envelope")
		http.Error(w, ErrMalformedPayload.Error(), http.StatusBadRequest)
		return
	}

	logger.WithField("events", len(events)).Debug("webhook delivery accepted")

	for i, ev := range events {
		evLogger := logger.WithFields(logrus.Fields{
			"index":  i,
			"event":  string(ev.Type),
			"source": ev.Source.ID(),
		})
		evLogger.Info("dispatching event")
		if err := wh.dispatch(r.Context(), ev); err != nil {
			evLogger.WithError(err).Error("event handler failed")
			http.Error(w, "internal dispatch error", http.StatusInternalServerError)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (wh *Webhook) dispatch(ctx context.Context, ev Event) error {
	switch ev.Type {
	case EventTypeMessage:
		return wh.handler.HandleMessage(ctx, ev)
	case EventTypeJoin:
		return wh.handler.HandleJoin(ctx, ev)
	case EventTypeLeave:
		return wh.handler.HandleLeave(ctx, ev)
	default:
		wh.log.WithField("event", string(ev.Type)).Debug("skipping unsupported event type")
		return nil
	}
}
