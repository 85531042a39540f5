// Package intake receives orders placed by the purchase flow from RabbitMQ.
package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	dateLayout    = "2006-01-02"
	consumerTag   = "storefront-intake"
	prefetchCount = 10
)

// Channel is the part of *amqp.Channel the consumer needs.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type ReceiveOrderHandler interface {
	Handle(ctx context.Context, command commands.ReceiveOrderCommand) (*order.Order, error)
}

// OrderPlaced is the message body published by the purchase flow.
type OrderPlaced struct {
	OrderID       string  `json:"orderId"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	Address       string  `json:"address"`
	ProductName   string  `json:"productName"`
	ProductID     string  `json:"productId,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status,omitempty"`
	Date          string  `json:"date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

func (m OrderPlaced) intake() (commands.OrderIntake, error) {
	in := commands.OrderIntake{
		OrderID:       m.OrderID,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		Address:       m.Address,
		ProductName:   m.ProductName,
		ProductID:     m.ProductID,
		Amount:        m.Amount,
		Status:        m.Status,
		Notes:         m.Notes,
	}
	if m.Date != "" {
		date, err := time.Parse(dateLayout, m.Date)
		if err != nil {
			return commands.OrderIntake{}, errs.NewValueIsInvalidErrorWithCause("order date", err)
		}
		in.Date = date
	}
	return in, nil
}

type Consumer struct {
	ch      Channel
	queue   string
	handler ReceiveOrderHandler
	log     *zap.Logger
}

func NewConsumer(ch Channel, queue string, handler ReceiveOrderHandler, log *zap.Logger) (*Consumer, error) {
	if ch == nil {
		return nil, errs.NewValueIsRequiredError("amqp channel")
	}
	if handler == nil {
		return nil, errs.NewValueIsRequiredError("receive order handler")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{ch: ch, queue: queue, handler: handler, log: log.With(zap.String("queue", queue))}, nil
}

// Run consumes until ctx is done or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if _, err := c.ch.QueueDeclare(c.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", c.queue, err)
	}
	if err := c.ch.Qos(prefetchCount, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}

	deliveries, err := c.ch.Consume(c.queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	c.log.Info("order intake started")
	for {
		select {
		case <-ctx.Done():
			c.log.Info("order intake stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	log := c.log.With(zap.String("message_id", d.MessageId), zap.Uint64("delivery_tag", d.DeliveryTag))
	ctx = logger.WithContext(ctx, log)

	var msg OrderPlaced
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Warn("dropping malformed order message", zap.Error(err))
		c.settle(log, d.Nack(false, false))
		return
	}
	log = log.With(zap.String("order_id", msg.OrderID))

	cmd, err := c.command(msg)
	if err != nil {
		log.Warn("dropping invalid order message", zap.Error(err))
		c.settle(log, d.Nack(false, false))
		return
	}

	_, err = c.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		log.Info("order received")
		c.settle(log, d.Ack(false))
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		log.Info("order already received, acknowledging redelivery")
		c.settle(log, d.Ack(false))
	case isPermanent(err):
		log.Warn("dropping rejected order", zap.Error(err))
		c.settle(log, d.Nack(false, false))
	default:
		log.Error("order intake failed, requeueing", zap.Error(err))
		c.settle(log, d.Nack(false, true))
	}
}

func (c *Consumer) command(msg OrderPlaced) (commands.ReceiveOrderCommand, error) {
	in, err := msg.intake()
	if err != nil {
		return commands.ReceiveOrderCommand{}, err
	}
	return commands.NewReceiveOrderCommand(in)
}

func (c *Consumer) settle(log *zap.Logger, err error) {
	if err != nil {
		log.Error("failed to settle delivery", zap.Error(err))
	}
}

func isPermanent(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
