package remote

import "github.com/matt-g-everett/tweentx/tween"

// Sample is one remote observation of an object's position.
type Sample struct {
	Position tween.Vector3 `json:"position"`
	// Time is the sender's clock in seconds, used to order samples.
	Time float64 `json:"time"`
}

// A Service delivers the samples published for a remote object.
type Service interface {
	Listen(objectID string, fn func(Sample)) error
}
