package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ik5/drumscribe"
	"github.com/ik5/drumscribe/internal/audiotest"
)

func testHandler(opts serverOptions) http.Handler {
	if opts.maxBody == 0 {
		opts.maxBody = 32 << 20
	}
	return newHandler(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func twoHitWAV() []byte {
	return audiotest.WAV(44100, 1, 16, audiotest.Impulses(44100, 2000, 0.8, 200, 900))
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testHandler(serverOptions{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "{\"status\":\"ok\"}\n" {
		t.Errorf("body = %q", got)
	}
	if _, err := uuid.Parse(rec.Header().Get(requestIDHeader)); err != nil {
		t.Errorf("%s = %q is not a uuid: %v", requestIDHeader, rec.Header().Get(requestIDHeader), err)
	}
}

func TestTranscribeEndpoint(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe-drums?format=wav&subdivision=16", bytes.NewReader(twoHitWAV()))
	rec := httptest.NewRecorder()
	testHandler(serverOptions{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var res drumscribe.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Stats.DetectedHits != 2 || res.Stats.InsertedRests != 2 {
		t.Errorf("stats = %+v, want 2 hits and 2 rests", res.Stats)
	}
	if len(res.Events) != 4 || res.Events[0].StartMs != 125 || res.Events[2].StartMs != 875 {
		t.Errorf("events = %+v", res.Events)
	}
	if res.Events[0].Features == nil || res.Events[1].Features != nil {
		t.Errorf("features should be present on hits only")
	}
}

func TestTranscribeEndpoint_HugeMinGap(t *testing.T) {
	t.Parallel()

	wav := audiotest.WAV(44100, 1, 16, audiotest.Impulses(44100, 2000, 0.8, 200, 900, 1600))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe-drums?minGap=1e20", bytes.NewReader(wav))
	rec := httptest.NewRecorder()
	testHandler(serverOptions{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var res drumscribe.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Stats.DetectedHits != 1 {
		t.Errorf("hits = %d, want 1 when the gap spans the whole clip", res.Stats.DetectedHits)
	}
}

func TestTranscribeEndpoint_DefaultsToWAV(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe-drums", bytes.NewReader(twoHitWAV()))
	rec := httptest.NewRecorder()
	testHandler(serverOptions{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
}

func TestTranscribeEndpoint_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		target  string
		body    []byte
		maxBody int64
		status  int
	}{
		{"bad bpm", http.MethodPost, "/api/transcribe-drums?bpm=fast", twoHitWAV(), 0, http.StatusBadRequest},
		{"zero bpm", http.MethodPost, "/api/transcribe-drums?bpm=0", twoHitWAV(), 0, http.StatusBadRequest},
		{"bad subdivision", http.MethodPost, "/api/transcribe-drums?subdivision=12", twoHitWAV(), 0, http.StatusBadRequest},
		{"unknown format", http.MethodPost, "/api/transcribe-drums?format=flac", twoHitWAV(), 0, http.StatusBadRequest},
		{"empty body", http.MethodPost, "/api/transcribe-drums", nil, 0, http.StatusBadRequest},
		{"not a wav", http.MethodPost, "/api/transcribe-drums", []byte("RIFF....JUNKJUNK"), 0, http.StatusUnprocessableEntity},
		{"too large", http.MethodPost, "/api/transcribe-drums", twoHitWAV(), 1024, http.StatusRequestEntityTooLarge},
		{"wrong method", http.MethodGet, "/api/transcribe-drums", nil, 0, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, bytes.NewReader(tt.body))
			rec := httptest.NewRecorder()
			testHandler(serverOptions{maxBody: tt.maxBody}).ServeHTTP(rec, req)

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body)
			}
			if tt.status == http.StatusMethodNotAllowed {
				return
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["error"] == "" || body["requestId"] != rec.Header().Get(requestIDHeader) {
				t.Errorf("error body = %v", body)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	h := testHandler(serverOptions{allowedOrigins: []string{"https://app.example"}})

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example", "https://app.example"},
		{"https://evil.example", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Origin", tt.origin)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestConfigFromQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost,
		"/?bpm=96&subdivision=16&threshold=0.3&minGap=80&restMin=150&silenceRms=0.05", nil)

	cfg, err := configFromQuery(req.URL.Query())
	if err != nil {
		t.Fatalf("configFromQuery() error = %v", err)
	}

	if cfg.BPM != 96 || cfg.Subdivision != 16 || cfg.OnsetThreshold != 0.3 ||
		cfg.MinInterOnsetMs != 80 || cfg.RestMinMs != 150 || cfg.SilenceRMSThreshold != 0.05 {
		t.Errorf("config = %+v", cfg)
	}
}
