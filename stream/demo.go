package stream

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/ease"
	"github.com/matt-g-everett/tweentx/tween"
)

type pose struct {
	position tween.Vector3
	scale    tween.Vector3
	color    colorful.Color
}

func parsePose(p Pose) (pose, error) {
	c, err := colorful.Hex(p.Color)
	if err != nil {
		return pose{}, fmt.Errorf("colour %q: %w", p.Color, err)
	}
	return pose{p.Position, p.Scale, c}, nil
}

// Demo moves, scales and recolours a Node between two poses, swapping
// direction each time all three tweens have finished.
type Demo struct {
	node      *Node
	scheduler *tween.Scheduler
	logger    *log.Logger

	duration    float64
	moveEasing  ease.Func
	scaleEasing ease.Func
	colorEasing ease.Func

	mu        sync.Mutex
	from      pose
	to        pose
	active    []tween.Tweener
	completed int
	cycles    int
	stopped   bool
}

// NewDemo creates a Demo from its config section.
func NewDemo(config DemoConfig, node *Node, scheduler *tween.Scheduler, logger *log.Logger) (*Demo, error) {
	if node == nil {
		return nil, tween.ErrNilTarget
	}

	d := new(Demo)
	d.node = node
	d.scheduler = scheduler
	d.logger = logger
	if d.logger == nil {
		d.logger = log.New(io.Discard, "", 0)
	}
	d.duration = config.Duration

	var err error
	if d.moveEasing, err = ease.ByName(config.MoveEasing); err != nil {
		return nil, err
	}
	if d.scaleEasing, err = ease.ByName(config.ScaleEasing); err != nil {
		return nil, err
	}
	if d.colorEasing, err = ease.ByName(config.ColorEasing); err != nil {
		return nil, err
	}
	if d.from, err = parsePose(config.From); err != nil {
		return nil, err
	}
	if d.to, err = parsePose(config.To); err != nil {
		return nil, err
	}
	return d, nil
}

// Start begins the first cycle.
func (d *Demo) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = false
	return d.startCycleLocked()
}

// Stop cancels the running cycle and prevents another from starting.
func (d *Demo) Stop() {
	d.mu.Lock()
	d.stopped = true
	active := d.active
	d.active = nil
	d.mu.Unlock()

	for _, t := range active {
		t.Cancel()
	}
}

// Cycles returns the number of finished cycles.
func (d *Demo) Cycles() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cycles
}

func (d *Demo) startCycleLocked() error {
	from, to := d.from, d.to
	done := tween.WithOnComplete(d.tweenFinished)

	move, err := tween.NewMove(d.node, from.position, to.position, d.duration, tween.WithEasing(d.moveEasing), done)
	if err != nil {
		return err
	}
	scale, err := tween.NewScale(d.node, from.scale, to.scale, d.duration, tween.WithEasing(d.scaleEasing), done)
	if err != nil {
		return err
	}
	color, err := tween.NewColor(d.node, from.color, to.color, d.duration, tween.WithEasing(d.colorEasing), done)
	if err != nil {
		return err
	}

	d.completed = 0
	d.active = []tween.Tweener{move, scale, color}
	for _, t := range d.active {
		d.scheduler.Add(t)
	}
	return nil
}

func (d *Demo) tweenFinished(t tween.Tweener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	d.completed++
	d.logger.Printf("%T finished", t)
	if d.completed < len(d.active) {
		return
	}

	d.cycles++
	d.from, d.to = d.to, d.from
	d.logger.Printf("All tweens finished, restarting (cycle %d)", d.cycles)
	if err := d.startCycleLocked(); err != nil {
		d.logger.Printf("Restart failed: %v", err)
	}
}
