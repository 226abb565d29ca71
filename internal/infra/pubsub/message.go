package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"loyalty/internal/domain/service"
	"loyalty/internal/errors"
)

// PushMessage represents the structure of a Pub/Sub push message.
// The local publisher sends the same envelope Google Pub/Sub pushes to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewVisitPushMessage wraps a visit event into a push envelope.
func NewVisitPushMessage(event *service.VisitEvent, subscription string) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = visitAttributes(event)
	msg.Message.MessageID = event.VisitID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg, nil
}

// DecodeVisitEvent extracts the visit event of a push envelope.
func (m *PushMessage) DecodeVisitEvent() (*service.VisitEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.VisitEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse visit event")
	}

	return &event, nil
}

// visitAttributes builds message attributes for filtering and tracing
func visitAttributes(event *service.VisitEvent) map[string]string {
	attributes := map[string]string{
		"visit_id":  event.VisitID,
		"client_id": event.ClientID,
		"shop_id":   event.ShopID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
