package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/eclipse/paho.mqtt.golang"
)

// MqttService delivers samples published as JSON on <prefix>/<objectID>.
type MqttService struct {
	client mqtt.Client
	prefix string
	qos    byte
	logger *log.Logger
}

// NewMqttService creates a Service over an MQTT client.
func NewMqttService(client mqtt.Client, prefix string, logger *log.Logger) *MqttService {
	m := new(MqttService)
	m.client = client
	m.prefix = prefix
	m.qos = 1
	m.logger = logger
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	return m
}

// Topic returns the topic samples for objectID are published on.
func (m *MqttService) Topic(objectID string) string {
	if m.prefix == "" {
		return objectID
	}
	return m.prefix + "/" + objectID
}

// Listen subscribes fn to the samples for objectID.
func (m *MqttService) Listen(objectID string, fn func(Sample)) error {
	topic := m.Topic(objectID)
	if token := m.client.Subscribe(topic, m.qos, m.handler(fn)); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	m.logger.Printf("Listening for samples on %s", topic)
	return nil
}

// Publish sends a sample for objectID.
func (m *MqttService) Publish(objectID string, s Sample) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode sample: %w", err)
	}
	topic := m.Topic(objectID)
	if token := m.client.Publish(topic, m.qos, false, b); token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish %s: %w", topic, token.Error())
	}
	return nil
}

func (m *MqttService) handler(fn func(Sample)) mqtt.MessageHandler {
	return func(client mqtt.Client, msg mqtt.Message) {
		var s Sample
		if err := json.Unmarshal(msg.Payload(), &s); err != nil {
			m.logger.Printf("Dropped malformed sample %d on %s: %v", msg.MessageID(), msg.Topic(), err)
			return
		}
		fn(s)
	}
}
