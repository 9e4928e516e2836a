package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/fairpay/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a consumer for topic/channel. Call ConnectToNSQD or
// ConnectToLookupd to start receiving.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()
	config.MaxAttempts = 5

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	return &Consumer{consumer: consumer, topic: topic}, nil
}

// wrapHandler requeues the message when handler fails
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		if len(message.Body) == 0 {
			return nil
		}
		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing message, requeueing",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}
		return nil
	}
}

// ConnectToNSQD connects the consumer directly to a daemon
func (c *Consumer) ConnectToNSQD(address string) error {
	if err := c.consumer.ConnectToNSQD(address); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// ConnectToLookupd connects the consumer to NSQ lookupd instances
func (c *Consumer) ConnectToLookupd(addresses []string) error {
	for _, addr := range addresses {
		if err := c.consumer.ConnectToNSQLookupd(addr); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", addr, err)
		}
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer and waits for in-flight handlers
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
