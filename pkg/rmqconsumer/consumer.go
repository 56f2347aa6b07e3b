package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"marketplace-admin-api/config"
	"marketplace-admin-api/internal/application/ports"
	"marketplace-admin-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	mailer     ports.Mailer
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, mailer ports.Mailer) *Consumer {
	return &Consumer{
		cfg:    cfg,
		log:    logger,
		mailer: mailer,
	}
}

func (c *Consumer) Connect(dsn string) error {
	var err error
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	var err error
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range []string{
		mq.ActionCreated,
		mq.ActionBanned,
		mq.ActionRestored,
		mq.ActionDeleted,
	} {
		if err = c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			// we can also use "fan-out" chan here with "worker-pool"
			// in case of heavy notification volume
			if err := c.delivery(ctx, msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	var ev mq.Event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}
	if ev.Email == "" {
		c.log.Warn("lifecycle event without email, skipping",
			zap.String("action", ev.Action),
			zap.String("entity", ev.Entity),
		)
		return nil
	}

	subject, body := ComposeMail(ev)
	if err := c.mailer.Send(ctx, ev.Email, subject, body); err != nil {
		return fmt.Errorf("send %s mail to %s: %w", ev.Action, ev.Email, err)
	}

	c.log.Info("notification sent",
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.String("email", ev.Email),
	)

	return nil
}

// ComposeMail picks the notification template for a lifecycle action.
func ComposeMail(ev mq.Event) (subject, body string) {
	name := ev.FullName
	if name == "" {
		name = "there"
	}

	switch ev.Action {
	case mq.ActionCreated:
		return "Welcome to the marketplace",
			fmt.Sprintf("Hello %s,\r\n\r\nYour %s account has been created.\r\n", name, ev.Entity)
	case mq.ActionBanned:
		return "Your account has been suspended",
			fmt.Sprintf("Hello %s,\r\n\r\nYour %s account has been suspended by the marketplace staff.\r\n", name, ev.Entity)
	case mq.ActionRestored:
		return "Your account has been restored",
			fmt.Sprintf("Hello %s,\r\n\r\nYour %s account is active again.\r\n", name, ev.Entity)
	case mq.ActionDeleted:
		return "Your account has been deleted",
			fmt.Sprintf("Hello %s,\r\n\r\nYour %s account and its data have been permanently removed.\r\n", name, ev.Entity)
	default:
		return "Account update",
			fmt.Sprintf("Hello %s,\r\n\r\nThere was an update to your %s account.\r\n", name, ev.Entity)
	}
}
