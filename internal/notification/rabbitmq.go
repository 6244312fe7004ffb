package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher hands notification events to a durable RabbitMQ queue. The
// consumer side (email, push, whatever) is someone else's problem; this
// process only enqueues.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

// NewPublisher connects to RabbitMQ and declares the notification queue.
func NewPublisher(url, queueName string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connecting to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("opening channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declaring queue %q: %w", queueName, err)
	}

	return &Publisher{conn: conn, channel: ch, queue: q}, nil
}

func (p *Publisher) Publish(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshalling notification: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return p.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		p.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *Publisher) Close() {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			logger.Log.Error("Closing RabbitMQ channel", "error", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			logger.Log.Error("Closing RabbitMQ connection", "error", err)
		}
	}
}

// NoopPublisher drops notifications. Used when AMQP is not configured so
// the rest of the application keeps working.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, n domain.Notification) error {
	return nil
}
