package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/LaundryLocker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultEmailQueue = "notifications.email"

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Message is the payload placed on the queue for the delivery worker.
type Message struct {
	Channel     domain.Channel           `json:"channel"`
	Event       domain.NotificationEvent `json:"event"`
	Destination string                   `json:"destination"`
	Args        domain.NotificationArgs  `json:"args"`
	Text        string                   `json:"text"`
	CreatedAt   time.Time                `json:"created_at"`
}

// QueueNotifier hands notifications to a RabbitMQ queue; a separate worker does the actual delivery.
type QueueNotifier struct {
	mu        sync.Mutex
	pub       publisher
	queue     string
	channel   domain.Channel
	templates *Templates
	logger    logger.Logger
	now       func() time.Time
}

// NewQueueNotifier declares a durable queue on ch and publishes persistent messages to it.
func NewQueueNotifier(ch *amqp.Channel, queue string, channel domain.Channel, templates *Templates, log logger.Logger) (*QueueNotifier, error) {
	if queue == "" {
		queue = DefaultEmailQueue
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	return newQueueNotifier(ch, queue, channel, templates, log), nil
}

func newQueueNotifier(pub publisher, queue string, channel domain.Channel, templates *Templates, log logger.Logger) *QueueNotifier {
	return &QueueNotifier{
		pub:       pub,
		queue:     queue,
		channel:   channel,
		templates: templates,
		logger:    log,
		now:       time.Now,
	}
}

func (n *QueueNotifier) Send(ctx context.Context, event domain.NotificationEvent, destination string, args domain.NotificationArgs) error {
	text, err := n.templates.Render(event, args)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	msg := Message{
		Channel:     n.channel,
		Event:       event,
		Destination: destination,
		Args:        args,
		Text:        text,
		CreatedAt:   n.now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    msg.CreatedAt,
		Body:         body,
	}

	n.mu.Lock()
	err = n.pub.PublishWithContext(ctx, "", n.queue, false, false, pub)
	n.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish notification to %s: %w", n.queue, err)
	}

	n.logger.Debug("notification queued",
		logger.String("queue", n.queue),
		logger.String("event", string(event)),
	)

	return nil
}
