package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/matt-g-everett/tweentx/stream"
)

// Scheduler is the part of a tween scheduler the API reports on.
type Scheduler interface {
	Len() int
	Running() bool
}

// Api serves the demo node's state over HTTP.
type Api struct {
	addr      string
	node      *stream.Node
	scheduler Scheduler
}

type status struct {
	Frame   stream.Frame `json:"frame"`
	Tweens  int          `json:"tweens"`
	Running bool         `json:"running"`
}

func NewApi(addr string, node *stream.Node, scheduler Scheduler) *Api {
	a := new(Api)
	a.addr = addr
	a.node = node
	a.scheduler = scheduler
	return a
}

// Handler returns the API's routes.
func (a *Api) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /state", a.handleState)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func (a *Api) handleState(w http.ResponseWriter, r *http.Request) {
	s := status{
		Frame:   a.node.Snapshot(),
		Tweens:  a.scheduler.Len(),
		Running: a.scheduler.Running(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s); err != nil {
		log.Printf("Encode state: %v", err)
	}
}

// Serve listens until ctx ends.
func (a *Api) Serve(ctx context.Context) error {
	srv := &http.Server{Addr: a.addr, Handler: a.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("Listening on %s...", a.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
