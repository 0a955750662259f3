// Package rabbitmq publishes order events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"orderbot/internal/core/ports"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultExchange = "orders_topic"

	// OrderPlacedRoutingKey is the routing key of OrderPlaced messages.
	OrderPlacedRoutingKey = "order.placed"
)

var ErrPublisherClosed = errors.New("publisher is closed")

var _ ports.OrderEventPublisher = (*Publisher)(nil)

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends OrderPlaced events as persistent JSON messages. It is safe
// for concurrent use; publishes are serialized on one channel.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   *slog.Logger
	closed   bool
}

// Dial connects to the broker and declares the durable topic exchange.
func Dial(url, exchange string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(ch, exchange, logger)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn

	return p, nil
}

func newPublisher(ch channel, exchange string, logger *slog.Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger.With("component", "rabbitmq_publisher"),
	}, nil
}

// PublishOrderPlaced publishes event with routing key OrderPlacedRoutingKey.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event ports.OrderPlaced) error {
	msg, err := newOrderPlacedMessage(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if err = p.ch.PublishWithContext(ctx, p.exchange, OrderPlacedRoutingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", OrderPlacedRoutingKey, err)
	}

	p.logger.DebugContext(ctx, "Published order event",
		"order_id", event.Order.ID().Int64(), "message_id", msg.MessageId)
	return nil
}

// Close closes the channel and the connection. It is safe to call twice.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.ch.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

type orderPlacedItem struct {
	FoodItem string `json:"foodItem"`
	Quantity int    `json:"quantity"`
}

type orderPlacedBody struct {
	OrderID   int64             `json:"orderId"`
	SessionID string            `json:"sessionId"`
	Items     []orderPlacedItem `json:"items"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	PlacedAt  time.Time         `json:"placedAt"`
}

func newOrderPlacedMessage(event ports.OrderPlaced) (amqp.Publishing, error) {
	if err := event.Order.Validate(); err != nil {
		return amqp.Publishing{}, err
	}

	lines := event.Order.Lines()
	body := orderPlacedBody{
		OrderID:   event.Order.ID().Int64(),
		SessionID: event.SessionID.String(),
		Items:     make([]orderPlacedItem, 0, len(lines)),
		Total:     event.Total,
		Status:    event.Order.Status().String(),
		PlacedAt:  event.PlacedAt.UTC(),
	}
	for _, l := range lines {
		body.Items = append(body.Items, orderPlacedItem{FoodItem: l.FoodItem(), Quantity: l.Quantity()})
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal order placed event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.PlacedAt.UTC(),
		Type:         OrderPlacedRoutingKey,
		Body:         payload,
	}, nil
}
