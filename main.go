package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/tweentx/api"
	"github.com/matt-g-everett/tweentx/remote"
	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/tween"
	"golang.org/x/sync/errgroup"
)

type app struct {
	Config    stream.Config
	Client    mqtt.Client
	Scheduler *tween.Scheduler
	Node      *stream.Node
	Ghost     *stream.Node
	Demo      *stream.Demo
	Samples   *remote.MqttService
	Session   *remote.Session
	Streamer  *stream.Streamer
	Api       *api.Api
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Session.Listen(a.Config.Remote.ObjectID); err != nil {
		log.Println(err)
	}
}

func (a *app) setup() {
	logger := log.Default()

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	a.Scheduler = tween.NewScheduler(tween.FrameTicker{Rate: a.Config.Scheduler.FrameRate}, tween.WithLogger(logger))
	a.Node = stream.NewNode()
	a.Ghost = stream.NewNode()

	var err error
	a.Demo, err = stream.NewDemo(a.Config.Demo, a.Node, a.Scheduler, logger)
	if err != nil {
		log.Fatal(err)
	}

	a.Samples = remote.NewMqttService(a.Client, a.Config.Mqtt.Topics.Remote, logger)
	a.Session, err = remote.NewSession(a.Ghost, a.Scheduler, a.Samples, a.Config.Remote.Smoothing)
	if err != nil {
		log.Fatal(err)
	}
	a.Session.SetLogger(logger)

	a.Streamer = stream.NewStreamer(a.Client, a.Node, a.Config.Mqtt.Topics.State, a.Config.Scheduler.FrameRate)
	a.Api = api.NewApi(a.Config.Api.Addr, a.Node, a.Scheduler)
}

// drainLoop reconciles the remote samples received since the last cycle.
func (a *app) drainLoop(ctx context.Context) error {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := a.Session.Drain(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			log.Printf("Remote %s settled at %v", a.Config.Remote.ObjectID, a.Ghost.Position())
		}
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	if err := a.Demo.Start(); err != nil {
		return err
	}
	defer a.Demo.Stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.Streamer.Run(ctx) })
	g.Go(func() error { return a.Api.Serve(ctx) })
	g.Go(func() error { return a.drainLoop(ctx) })
	if a.Config.Remote.Emit {
		emitter := stream.NewEmitter(a.Samples, a.Config.Remote.ObjectID, 100*time.Millisecond)
		g.Go(func() error { return emitter.Run(ctx) })
	}
	return g.Wait()
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	// Read the config
	config, err := stream.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Config: broker %s, %v fps, remote object %q", config.Mqtt.URL, config.Scheduler.FrameRate, config.Remote.ObjectID)

	a := newApp(config)
	a.setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := a.run(ctx); err != nil {
		log.Fatal(err)
	}
}
