package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const transferQueue = "transfer-notices"

// AMQPNotifier publishes transfer notices to a durable RabbitMQ queue.
type AMQPNotifier struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewAMQPNotifier(url string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("error opening connection to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening channel: %w", err)
	}

	if _, err := ch.QueueDeclare(transferQueue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring queue %s: %w", transferQueue, err)
	}

	return &AMQPNotifier{conn: conn, ch: ch}, nil
}

func (n *AMQPNotifier) NotifyTransfer(ctx context.Context, notice TransferNotice) error {
	body, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("error marshaling transfer notice: %w", err)
	}

	err = n.ch.PublishWithContext(ctx, "", transferQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("error publishing transfer notice: %w", err)
	}
	return nil
}

func (n *AMQPNotifier) Close() error {
	if err := n.ch.Close(); err != nil {
		n.conn.Close()
		return err
	}
	return n.conn.Close()
}
