// mqtt.go - MQTT client used to publish user events

package mqtt // Declares the package name

import ( // Import required packages
	"encoding/json" // JSON payload encoding
	"errors"        // Timeout errors
	"fmt"           // Error wrapping
	"path"          // Topic joining
	"time"          // Connect and publish timeouts

	paho "github.com/eclipse/paho.mqtt.golang" // Eclipse Paho MQTT client
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	qos            = 1 // At least once
)

// ErrTimeout is returned when the broker does not acknowledge in time.
var ErrTimeout = errors.New("mqtt operation timed out")

// Client publishes JSON payloads below a fixed topic prefix.
type Client struct {
	client paho.Client
	prefix string
}

// Connect dials the broker and returns a ready Client.
func Connect(broker, clientID, prefix string) (*Client, error) {
	opts := paho.NewClientOptions() // Build client options
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)

	c := paho.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(connectTimeout) { // Broker did not answer
		return nil, fmt.Errorf("connect to %s: %w", broker, ErrTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", broker, err)
	}
	return &Client{client: c, prefix: prefix}, nil
}

// Publish sends payload to <prefix>/<topic>.
func (c *Client) Publish(topic string, payload interface{}) error {
	body, err := encodePayload(payload)
	if err != nil {
		return err
	}

	token := c.client.Publish(Topic(c.prefix, topic), qos, false, body)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish %s: %w", topic, ErrTimeout)
	}
	return token.Error()
}

// Disconnect waits up to 250ms for in-flight work before closing.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}

// Topic joins prefix and topic with a single slash.
func Topic(prefix, topic string) string {
	if prefix == "" {
		return topic
	}
	return path.Join(prefix, topic)
}

// encodePayload passes strings and bytes through and JSON-encodes everything else.
func encodePayload(payload interface{}) ([]byte, error) {
	switch p := payload.(type) {
	case []byte:
		return p, nil
	case string:
		return []byte(p), nil
	default:
		body, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		return body, nil
	}
}
