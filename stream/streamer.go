package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer publishes a Node's frames over MQTT.
type Streamer struct {
	client   mqtt.Client
	node     *Node
	topic    string
	interval time.Duration
}

// NewStreamer creates an instance of a Streamer publishing frameRate
// frames per second on topic.
func NewStreamer(client mqtt.Client, node *Node, topic string, frameRate float64) *Streamer {
	s := new(Streamer)
	s.client = client
	s.node = node
	s.topic = topic
	if frameRate <= 0 {
		frameRate = 30
	}
	s.interval = time.Duration(float64(time.Second) / frameRate)
	return s
}

// SendFrame sends the node's current frame as binary.
func (s *Streamer) SendFrame() error {
	b, err := s.node.Snapshot().MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	token := s.client.Publish(s.topic, 0, false, b)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish frame: %w", token.Error())
	}
	return nil
}

// Run sends frames until ctx ends.
func (s *Streamer) Run(ctx context.Context) error {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-publishTimer.C:
			if err := s.SendFrame(); err != nil {
				return err
			}
		}
	}
}
