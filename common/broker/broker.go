// Package broker connects the fleet to RabbitMQ and publishes order
// lifecycle events. Consumers (analytics, notifications) live outside
// this repo; publishing is always non-critical for the request path.
package broker

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderSettledEvent fires after a completion transaction settles an
// order's inventory state to SUCCESS or FAIL.
const OrderSettledEvent = "order.settled"

// Connect opens a channel to RabbitMQ and declares the fleet's
// exchanges. The returned close function shuts down channel and
// connection in that order.
func Connect(user, pass, host, port string) (*amqp.Channel, func() error, error) {
	address := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(address)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		OrderSettledEvent, // name
		"direct",          // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare %s exchange: %w", OrderSettledEvent, err)
	}

	closeFn := func() error {
		if err := ch.Close(); err != nil {
			return err
		}
		return conn.Close()
	}

	return ch, closeFn, nil
}

// PublishJSON publishes a persistent JSON message to an event
// exchange, carrying the current trace context in its headers.
func PublishJSON(ctx context.Context, ch *amqp.Channel, event string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	return ch.PublishWithContext(ctx,
		event, // exchange
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Headers:      InjectTraceContext(ctx),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
}
