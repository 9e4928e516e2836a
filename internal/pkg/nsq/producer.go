package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/fairpay/internal/pkg/logger"
)

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer *nsq.Producer
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}
	producer.SetLoggerLevel(nsq.LogLevelWarning)

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer}, nil
}

// Publish sends a JSON message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := p.producer.Publish(topic, msgBytes); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Ping checks the daemon is reachable
func (p *Producer) Ping() error {
	return p.producer.Ping()
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}
