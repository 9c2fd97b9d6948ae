package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/tween"
)

type fakeScheduler struct{ n int }

func (f fakeScheduler) Len() int      { return f.n }
func (f fakeScheduler) Running() bool { return f.n > 0 }

func TestState(t *testing.T) {
	node := stream.NewNode()
	node.SetPosition(tween.Vector3{X: 4, Y: 1})
	a := NewApi(":0", node, fakeScheduler{n: 3})

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got struct {
		Frame struct {
			Position tween.Vector3 `json:"position"`
			Color    string        `json:"color"`
		} `json:"frame"`
		Tweens  int  `json:"tweens"`
		Running bool `json:"running"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Frame.Position != (tween.Vector3{X: 4, Y: 1}) || got.Frame.Color != "#ffffff" {
		t.Errorf("frame = %+v", got.Frame)
	}
	if got.Tweens != 3 || !got.Running {
		t.Errorf("tweens=%d running=%v", got.Tweens, got.Running)
	}
}

func TestHealthz(t *testing.T) {
	a := NewApi(":0", stream.NewNode(), fakeScheduler{})
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/state", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /state status = %d", rec.Code)
	}
}
