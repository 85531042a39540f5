// Package notifier delivers seller notices: to a RabbitMQ queue for the UI
// collaborator and to the service log.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/application/notices"
	"storefront/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type AMQPNotifier struct {
	ch    Channel
	queue string
}

var _ ports.Notifier = (*AMQPNotifier)(nil)

// NewAMQPNotifier declares a durable queue and publishes notices to it
// through the default exchange.
func NewAMQPNotifier(ch Channel, queue string) (*AMQPNotifier, error) {
	if ch == nil {
		return nil, fmt.Errorf("amqp channel is nil")
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &AMQPNotifier{ch: ch, queue: queue}, nil
}

func (n *AMQPNotifier) Notify(ctx context.Context, notice notices.Notice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return err
	}

	return n.ch.PublishWithContext(ctx, "", n.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(notice.Kind),
		Timestamp:    notice.OccurredAt,
		Body:         body,
	})
}
