// Package ease provides the easing curves used by tweens.
//
// Every function maps normalized time t in [0,1] to eased progress.
// Behaviour outside that interval is not defined; callers clamp first.
package ease

import (
	"errors"
	"fmt"

	"github.com/fogleman/ease"
)

// ErrUnknown is returned by ByName for a name with no registered curve.
var ErrUnknown = errors.New("unknown easing function")

// Func maps normalized time to eased progress.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// InQuad accelerates from zero velocity, t².
func InQuad(t float64) float64 {
	return ease.InQuad(t)
}

func OutQuad(t float64) float64    { return ease.OutQuad(t) }
func InOutQuad(t float64) float64  { return ease.InOutQuad(t) }
func InCubic(t float64) float64    { return ease.InCubic(t) }
func OutCubic(t float64) float64   { return ease.OutCubic(t) }
func InOutCubic(t float64) float64 { return ease.InOutCubic(t) }
func InSine(t float64) float64     { return ease.InSine(t) }
func OutSine(t float64) float64    { return ease.OutSine(t) }
func InOutSine(t float64) float64  { return ease.InOutSine(t) }

var byName = map[string]Func{
	"linear":     Linear,
	"inQuad":     InQuad,
	"outQuad":    OutQuad,
	"inOutQuad":  InOutQuad,
	"inCubic":    InCubic,
	"outCubic":   OutCubic,
	"inOutCubic": InOutCubic,
	"inSine":     InSine,
	"outSine":    OutSine,
	"inOutSine":  InOutSine,
}

// ByName looks up an easing function by its config name, e.g. "inQuad".
// An empty name resolves to Linear.
func ByName(name string) (Func, error) {
	if name == "" {
		return Linear, nil
	}
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return f, nil
}
