package stream

import (
	"context"
	"time"

	"github.com/matt-g-everett/tweentx/ease"
	"github.com/matt-g-everett/tweentx/remote"
	"github.com/matt-g-everett/tweentx/tween"
	"github.com/matt-g-everett/tweentx/util"
)

// A SamplePublisher sends remote samples for an object.
type SamplePublisher interface {
	Publish(objectID string, s remote.Sample) error
}

// Emitter plays the part of a remote peer: it publishes samples of an
// object swinging back and forth along X. Every reorderEvery-th sample is
// held back and sent after its successor, so receivers see stale data.
type Emitter struct {
	publisher    SamplePublisher
	objectID     string
	interval     time.Duration
	amplitude    float64
	lut          []float64
	reorderEvery int
}

func NewEmitter(publisher SamplePublisher, objectID string, interval time.Duration) *Emitter {
	e := new(Emitter)
	e.publisher = publisher
	e.objectID = objectID
	e.interval = interval
	if e.interval <= 0 {
		e.interval = 100 * time.Millisecond
	}
	e.amplitude = 10
	e.lut = util.GenerateLut(24, ease.InOutQuad)
	e.reorderEvery = 5
	return e
}

// Sample returns the i-th sample of the path.
func (e *Emitter) Sample(i int) remote.Sample {
	x := e.lut[i%len(e.lut)] * e.amplitude
	return remote.Sample{
		Position: tween.Vector3{X: x},
		Time:     float64(i) * e.interval.Seconds(),
	}
}

// sendOrder returns the samples in the order they go on the wire.
func (e *Emitter) sendOrder(samples []remote.Sample) []remote.Sample {
	out := append([]remote.Sample(nil), samples...)
	if e.reorderEvery < 2 {
		return out
	}
	for i := e.reorderEvery - 1; i+1 < len(out); i += e.reorderEvery {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

// Run publishes samples until ctx ends, a window of reorderEvery+1 at a time.
func (e *Emitter) Run(ctx context.Context) error {
	window := e.reorderEvery + 1
	ticker := time.NewTicker(e.interval * time.Duration(window))
	defer ticker.Stop()

	for i := 0; ; i += window {
		batch := make([]remote.Sample, window)
		for j := range batch {
			batch[j] = e.Sample(i + j)
		}
		for _, s := range e.sendOrder(batch) {
			if err := e.publisher.Publish(e.objectID, s); err != nil {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
