package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/rabbitmq/amqp091-go"
)

// ActivityRecorder records learning activities delivered by sibling services.
// The consumer dispatches through this interface so the activity service can
// implement it without the event package importing services.
type ActivityRecorder interface {
	RecordExternalActivity(ctx context.Context, event *InputActivityEvent) error
}

type EventConsumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	queueName string
	recorder  ActivityRecorder
	enabled   bool
	done      chan struct{}
}

func NewEventConsumer(rabbitURI, exchangeName string, recorder ActivityRecorder) (*EventConsumer, error) {
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event consumption is disabled")
		return &EventConsumer{
			enabled: false,
			done:    make(chan struct{}),
		}, nil
	}

	conn, err := amqp091.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(
		"talent.input.activity", // name
		true,                    // durable
		false,                   // delete when unused
		false,                   // exclusive
		false,                   // no-wait
		nil,                     // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		queue.Name,             // queue name
		EventTypeInputActivity, // routing key
		exchangeName,           // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	if err := channel.Qos(10, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	return &EventConsumer{
		conn:      conn,
		channel:   channel,
		queueName: queue.Name,
		recorder:  recorder,
		enabled:   true,
		done:      make(chan struct{}),
	}, nil
}

// Start begins consuming in a background goroutine until Close is called
func (c *EventConsumer) Start(ctx context.Context) error {
	if !c.enabled {
		log.Println("Event consumption is disabled, consumer not started")
		return nil
	}

	deliveries, err := c.channel.Consume(
		c.queueName, // queue
		"",          // consumer
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-c.done:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.handleDelivery(ctx, delivery)
			}
		}
	}()

	log.Printf("Event consumer started on queue %s", c.queueName)
	return nil
}

func (c *EventConsumer) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var event InputActivityEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		log.Printf("Error unmarshaling activity event: %v", err)
		delivery.Nack(false, false)
		return
	}

	if err := c.recorder.RecordExternalActivity(ctx, &event); err != nil {
		log.Printf("Error recording external activity for engineer %s: %v", event.EngineerID, err)
		delivery.Nack(false, true)
		return
	}

	delivery.Ack(false)
}

func (c *EventConsumer) Close() error {
	close(c.done)

	if !c.enabled {
		return nil
	}

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			log.Printf("Error closing RabbitMQ channel: %v", err)
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}

	return nil
}
