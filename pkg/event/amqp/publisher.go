/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination publisher_mocks_test.go -package amqp_test -source=publisher.go -mock_names amqpChannel=MockChannel

package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/zkage/internal/logfields"
	"github.com/trustbloc/zkage/pkg/event/spi"
)

var logger = log.New("event-amqp")

const exchangeKind = "topic"

type amqpChannel interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp.Publishing,
	) error
	Close() error
}

// Publisher publishes events to a RabbitMQ exchange using the topic as routing key.
type Publisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
}

// NewPublisher returns a Publisher on an already opened channel.
func NewPublisher(ch amqpChannel, exchange string) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
	}
}

// Dial connects to the broker, declares a durable topic exchange and returns a Publisher owning
// the connection.
func Dial(url, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, errors.Join(fmt.Errorf("open amqp channel: %w", err), conn.Close())
	}

	if err = ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		return nil, errors.Join(fmt.Errorf("declare exchange %s: %w", exchange, err), conn.Close())
	}

	p := NewPublisher(ch, exchange)
	p.conn = conn

	return p, nil
}

// Publish sends events to the exchange with topic as the routing key.
func (p *Publisher) Publish(ctx context.Context, topic string, events ...*spi.Event) error {
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", event.ID, err)
		}

		if err = p.channel.PublishWithContext(ctx, p.exchange, topic, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Type:         string(event.Type),
			Timestamp:    event.Time,
			Body:         body,
		}); err != nil {
			return fmt.Errorf("publish event %s: %w", event.ID, err)
		}

		logger.Debugc(ctx, "Event published", logfields.WithEvent(event))
	}

	return nil
}

// Close closes the channel and the owned connection, if any.
func (p *Publisher) Close() error {
	err := p.channel.Close()

	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}

	return err
}
