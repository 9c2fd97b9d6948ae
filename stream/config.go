package stream

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/tweentx/ease"
	"github.com/matt-g-everett/tweentx/tween"
	"gopkg.in/yaml.v2"
)

// Pose is one end of the demo's ping-pong animation.
type Pose struct {
	Position tween.Vector3 `yaml:"position"`
	Scale    tween.Vector3 `yaml:"scale"`
	Color    string        `yaml:"color"`
}

type DemoConfig struct {
	Duration    float64 `yaml:"duration" env:"TWEENTX_DEMO_DURATION"`
	MoveEasing  string  `yaml:"moveEasing"`
	ScaleEasing string  `yaml:"scaleEasing"`
	ColorEasing string  `yaml:"colorEasing"`
	From        Pose    `yaml:"from"`
	To          Pose    `yaml:"to"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url" env:"TWEENTX_MQTT_URL"`
		Username string `yaml:"username" env:"TWEENTX_MQTT_USERNAME"`
		Password string `yaml:"password" env:"TWEENTX_MQTT_PASSWORD"`
		ClientID string `yaml:"clientId" env:"TWEENTX_MQTT_CLIENT_ID"`
		Topics   struct {
			State  string `yaml:"state"`
			Remote string `yaml:"remote"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Scheduler struct {
		FrameRate float64 `yaml:"frameRate" env:"TWEENTX_FRAME_RATE"`
	} `yaml:"scheduler"`
	Remote struct {
		ObjectID  string  `yaml:"objectId" env:"TWEENTX_REMOTE_OBJECT"`
		Smoothing float64 `yaml:"smoothing" env:"TWEENTX_REMOTE_SMOOTHING"`
		Emit      bool    `yaml:"emit" env:"TWEENTX_REMOTE_EMIT"`
	} `yaml:"remote"`
	Api struct {
		Addr string `yaml:"addr" env:"TWEENTX_API_ADDR"`
	} `yaml:"api"`
	Demo DemoConfig `yaml:"demo"`
}

var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfig returns the configuration used for anything a config file
// leaves out.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "tweentx"
	c.Mqtt.Topics.State = "tweentx/state"
	c.Mqtt.Topics.Remote = "tweentx/remote"
	c.Scheduler.FrameRate = 60
	c.Remote.ObjectID = "crate"
	c.Remote.Smoothing = 0.1
	c.Api.Addr = ":3000"
	c.Demo = DemoConfig{
		Duration:    2,
		MoveEasing:  "inQuad",
		ScaleEasing: "inQuad",
		ColorEasing: "linear",
		From:        Pose{Position: tween.Zero, Scale: tween.One, Color: "#ffffff"},
		To:          Pose{Position: tween.Vector3{X: 10}, Scale: tween.Vector3{X: 2, Y: 2, Z: 2}, Color: "#ff0000"},
	}
	return c
}

// Load reads a YAML config file over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Scheduler.FrameRate <= 0 {
		return fmt.Errorf("%w: frame rate %v", ErrInvalidConfig, c.Scheduler.FrameRate)
	}
	if c.Remote.Smoothing < 0 || c.Remote.Smoothing >= 1 {
		return fmt.Errorf("%w: smoothing %v outside [0,1)", ErrInvalidConfig, c.Remote.Smoothing)
	}
	if c.Demo.Duration <= 0 {
		return fmt.Errorf("%w: demo duration %v", ErrInvalidConfig, c.Demo.Duration)
	}
	for _, name := range []string{c.Demo.MoveEasing, c.Demo.ScaleEasing, c.Demo.ColorEasing} {
		if _, err := ease.ByName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	for _, hex := range []string{c.Demo.From.Color, c.Demo.To.Color} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, hex, err)
		}
	}
	return nil
}
