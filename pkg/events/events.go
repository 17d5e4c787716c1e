package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/villamar/stay-enquiries/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	QueueSubscribe(subject, queue string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
	ID        string
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) QueueSubscribe(subject, queue string, handler func(msg *Message)) error {
	_, err := n.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
			ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Enquiry lifecycle subjects
const (
	EnquiryOpened    = "enquiry.opened"
	EnquirySubmitted = "enquiry.submitted"
	EnquiryRejected  = "enquiry.rejected"
	EnquiryFailed    = "enquiry.failed"
	EnquiryClosed    = "enquiry.closed"
)

type EnquiryOpenedEvent struct {
	SessionID    string    `json:"session_id"`
	PropertyName string    `json:"property_name,omitempty"`
	OpenedAt     time.Time `json:"opened_at"`
}

type EnquirySubmittedEvent struct {
	SessionID    string    `json:"session_id"`
	PropertyName string    `json:"property_name,omitempty"`
	GuestName    string    `json:"guest_name"`
	GuestEmail   string    `json:"guest_email"`
	CheckIn      string    `json:"check_in,omitempty"`
	CheckOut     string    `json:"check_out,omitempty"`
	Adults       int       `json:"adults"`
	Children     int       `json:"children"`
	Documents    int       `json:"documents"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

type EnquiryFailedEvent struct {
	SessionID string    `json:"session_id"`
	Reason    string    `json:"reason"`
	FailedAt  time.Time `json:"failed_at"`
}
