package jobs

import (
	"context"
	"fmt"
)

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// RabbitMQSender delivers serialized job commands to the jobs routing key.
type RabbitMQSender struct {
	publisher      RabbitMQPublisher
	jobsRoutingKey string
}

// NewRabbitMQSender returns new RabbitMQSender publishing job commands to provided routing key.
func NewRabbitMQSender(publisher RabbitMQPublisher, jobsRoutingKey string) RabbitMQSender {
	return RabbitMQSender{
		publisher:      publisher,
		jobsRoutingKey: jobsRoutingKey,
	}
}

// Send publishes one serialized job command.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if err := s.publisher.Publish(ctx, s.jobsRoutingKey, msg); err != nil {
		return fmt.Errorf("can't publish job to %q: %w", s.jobsRoutingKey, err)
	}

	return nil
}
