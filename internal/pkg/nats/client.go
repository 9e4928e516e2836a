package nats

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/piresc/fairpay/internal/pkg/logger"
)

// Client represents a NATS client for publishing and subscribing to messages
type Client struct {
	conn *nats.Conn
}

// NewClient creates a new NATS client
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.Name("fairpay"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	return &Client{conn: conn}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// IsConnected reports whether the connection is up
func (c *Client) IsConnected() bool {
	return c.conn != nil && c.conn.IsConnected()
}

// Publish sends a message to the specified subject
func (c *Client) Publish(subject string, data []byte) error {
	if err := c.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// PublishJSON marshals message and publishes it to subject
func (c *Client) PublishJSON(subject string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return c.Publish(subject, data)
}

// Subscribe subscribes to a subject and returns a subscription
func (c *Client) Subscribe(subject string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := c.conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to subject: %w", err)
	}
	return sub, nil
}

// Flush round-trips to the server so earlier publishes and subscriptions are in place
func (c *Client) Flush() error {
	return c.conn.Flush()
}

// Close drains and closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			c.conn.Close()
		}
	}
}
