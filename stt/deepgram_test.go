package stt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gws "github.com/gorilla/websocket"
	"github.com/mrsingh-rishi/speechkit/audio"
	"github.com/pkg/errors"
)

type received struct {
	query url.Values
	audio int
}

func deepgramServer(t *testing.T, responses ...string) (*httptest.Server, <-chan received) {
	t.Helper()
	got := make(chan received, 1)
	upgrader := gws.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		rec := received{query: r.URL.Query()}
		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if mt == gws.TextMessage {
				if !strings.Contains(string(msg), "CloseStream") {
					return
				}
				break
			}
			rec.audio += len(msg)
		}
		got <- rec

		for _, resp := range responses {
			if err := conn.WriteMessage(gws.TextMessage, []byte(resp)); err != nil {
				return
			}
		}
		conn.WriteMessage(gws.CloseMessage, gws.FormatCloseMessage(gws.CloseNormalClosure, ""))
		conn.ReadMessage()
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/listen"
}

func TestDeepgramTranscribe(t *testing.T) {
	srv, got := deepgramServer(t,
		`{"type":"Results","is_final":false,"channel":{"alternatives":[{"transcript":"halo"}]}}`,
		`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":"halo dunia","confidence":0.98}]}}`,
		`not json`,
		`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":"apa kabar"}]}}`,
		`{"type":"Metadata","request_id":"abc"}`,
	)

	dg := NewDeepgramRecognizer("test-key", wsURL(srv), "nova-2", nil)
	capture := &audio.Capture{Samples: make([]int16, 20000), SampleRate: audio.SampleRate}

	text, err := dg.Transcribe(context.Background(), capture, "id-ID")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if text != "halo dunia apa kabar" {
		t.Errorf("text = %q", text)
	}

	rec := <-got
	if rec.audio != 40000 {
		t.Errorf("server received %d audio bytes, want 40000", rec.audio)
	}
	for key, want := range map[string]string{
		"encoding":    "linear16",
		"sample_rate": "16000",
		"channels":    "1",
		"language":    "id-ID",
		"model":       "nova-2",
		"punctuate":   "true",
	} {
		if v := rec.query.Get(key); v != want {
			t.Errorf("query %s = %q, want %q", key, v, want)
		}
	}
}

func TestDeepgramNoFinalTranscript(t *testing.T) {
	srv, _ := deepgramServer(t,
		`{"type":"Results","is_final":true,"channel":{"alternatives":[{"transcript":""}]}}`,
	)

	dg := NewDeepgramRecognizer("test-key", wsURL(srv), "", nil)
	_, err := dg.Transcribe(context.Background(), &audio.Capture{Samples: make([]int16, 100), SampleRate: audio.SampleRate}, "en-US")
	if !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("err = %v, want ErrUnrecognized", err)
	}
}

func TestDeepgramRejectedKey(t *testing.T) {
	srv, _ := deepgramServer(t)

	dg := NewDeepgramRecognizer("wrong", wsURL(srv), "", nil)
	_, err := dg.Transcribe(context.Background(), &audio.Capture{Samples: make([]int16, 100), SampleRate: audio.SampleRate}, "en-US")
	if err == nil {
		t.Fatal("expected dial error")
	}
	if errors.Is(err, ErrUnrecognized) {
		t.Fatal("a rejected key must not trigger the fallback")
	}
}

func TestDeepgramEmptyCapture(t *testing.T) {
	dg := NewDeepgramRecognizer("test-key", "ws://127.0.0.1:1/v1/listen", "", nil)
	if _, err := dg.Transcribe(context.Background(), nil, "en-US"); !errors.Is(err, ErrUnrecognized) {
		t.Fatalf("err = %v, want ErrUnrecognized", err)
	}
}
