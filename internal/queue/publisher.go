package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// Publisher sends record-change events to RabbitMQ.  A Publisher built
// with an empty URL is disabled and drops events silently, so the
// console runs fine without a broker.  Errors are logged and returned;
// callers treat publishing as best-effort and never fail a save over
// it.
type Publisher struct {
	url string
	log zerolog.Logger
}

// NewPublisher returns a Publisher for the given broker URL.  An empty
// URL disables publishing.
func NewPublisher(url string, log zerolog.Logger) *Publisher {
	l := log.With().Str("component", "queue-publisher").Logger()
	if url == "" {
		l.Info().Msg("no broker URL configured, change events disabled")
	}
	return &Publisher{url: url, log: l}
}

// Publish sends one event to the change queue.  The queue is declared
// durable and messages persistent so events survive broker restarts.
// Each publish dials its own short-lived connection; change volume in
// a staff console is far too low for pooling to matter.
func (p *Publisher) Publish(ctx context.Context, event RecordChangedEvent) error {
	if p.url == "" {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn().Err(err).Msg("broker dial failed")
		return fmt.Errorf("broker dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn().Err(err).Msg("channel open failed")
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		ChangeQueueName, // name
		true,            // durable
		false,           // autoDelete
		false,           // exclusive
		false,           // noWait
		nil,             // args
	); err != nil {
		p.log.Warn().Err(err).Msg("queue declare failed")
		return fmt.Errorf("queue declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", ChangeQueueName, false, false, pub); err != nil {
		p.log.Warn().Err(err).Msg("publish failed")
		return fmt.Errorf("publish: %w", err)
	}

	p.log.Debug().
		Str("event_id", event.EventID).
		Str("entity", string(event.Entity)).
		Str("action", string(event.Action)).
		Int64("record_id", event.RecordID).
		Msg("published record change")
	return nil
}
