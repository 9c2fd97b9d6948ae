package stream

import (
	"encoding/binary"
	"encoding/json"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/tween"
)

const frameVersion = 1

// Frame is a snapshot of a Node, streamed once per tick.
type Frame struct {
	Position tween.Vector3
	Scale    tween.Vector3
	Color    colorful.Color
}

// MarshalBinary encodes the frame as a version word, six little endian
// float32 components and three colour bytes.
func (f Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, 2+6*4+3)
	binary.LittleEndian.PutUint16(data, frameVersion)
	for _, v := range []float64{
		f.Position.X, f.Position.Y, f.Position.Z,
		f.Scale.X, f.Scale.Y, f.Scale.Z,
	} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v)))
	}
	r, g, b := f.Color.Clamped().RGB255()
	data = append(data, r, g, b)
	return data, nil
}

type frameJSON struct {
	Position tween.Vector3 `json:"position"`
	Scale    tween.Vector3 `json:"scale"`
	Color    string        `json:"color"`
}

func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal(frameJSON{f.Position, f.Scale, f.Color.Clamped().Hex()})
}
