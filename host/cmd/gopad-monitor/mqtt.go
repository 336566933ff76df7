package main

import (
	"encoding/json"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"gopad/host/events"
)

// Topic is the MQTT topic device events are published to.
const Topic = "gopad/events"

// mqttBridge publishes every device event as a JSON message.
type mqttBridge struct {
	client paho.Client
}

// eventPayload is the published JSON form.
type eventPayload struct {
	Timestamp string `json:"timestamp"`
	Kind      string `json:"kind"`
	Key       int    `json:"key,omitempty"`
	Down      bool   `json:"down,omitempty"`
	Delta     int    `json:"delta,omitempty"`
	Position  int    `json:"position,omitempty"`
	Name      string `json:"name,omitempty"`
}

// newMQTTBridge connects to the given broker.
func newMQTTBridge(broker string) (*mqttBridge, error) {
	opts := paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("gopad-monitor").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("connect to broker: %w", err)
	}
	return &mqttBridge{client: client}, nil
}

// Handle publishes one event, QoS 0, not retained. A lost event is fine;
// the stream is advisory.
func (b *mqttBridge) Handle(ev events.Event) error {
	payload, err := json.Marshal(eventPayload{
		Timestamp: ev.Time.UTC().Format(time.RFC3339Nano),
		Kind:      string(ev.Kind),
		Key:       ev.Key,
		Down:      ev.Down,
		Delta:     ev.Delta,
		Position:  ev.Position,
		Name:      ev.Name,
	})
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	token := b.client.Publish(Topic, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	return token.Error()
}

func (b *mqttBridge) Close() error {
	b.client.Disconnect(1000)
	return nil
}
