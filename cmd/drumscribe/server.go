package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ik5/drumscribe"
	"github.com/ik5/drumscribe/audio"
)

const requestIDHeader = "X-Request-Id"

type serverOptions struct {
	maxBody        int64
	allowedOrigins []string
}

type server struct {
	reg     *audio.Registry
	maxBody int64
	log     *slog.Logger
}

type ctxKey struct{}

func newHandler(opts serverOptions, log *slog.Logger) http.Handler {
	s := &server{
		reg:     drumscribe.NewRegistry(),
		maxBody: opts.maxBody,
		log:     log,
	}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID)
	router.HandleFunc("/api/transcribe-drums", s.handleTranscribe).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: opts.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	})

	return c.Handler(router)
}

func (s *server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)

		log := s.log.With("requestId", id)
		log.Debug("request", "method", r.Method, "path", r.URL.Path)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, log)))
	})
}

func (s *server) logger(r *http.Request) *slog.Logger {
	if log, ok := r.Context().Value(ctxKey{}).(*slog.Logger); ok {
		return log
	}
	return s.log
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	log := s.logger(r)
	q := r.URL.Query()

	cfg, err := configFromQuery(q)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	cfg.Debug = log.Debug

	format := q.Get("format")
	if format == "" {
		format = "wav"
	}
	dec, ok := s.reg.Get(format)
	if !ok {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("%w: %q", audio.ErrUnknownFormat, format))
		return
	}

	buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, r, http.StatusRequestEntityTooLarge, fmt.Errorf("body exceeds %d bytes", tooBig.Limit))
			return
		}
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	if len(buf) == 0 {
		s.fail(w, r, http.StatusBadRequest, errors.New("empty body"))
		return
	}

	src, err := dec.Decode(bytes.NewReader(buf))
	if err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	res, err := drumscribe.TranscribeSource(src, cfg)
	if err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}

	log.Info("transcribed",
		"format", format,
		"bytes", len(buf),
		"hits", res.Stats.DetectedHits,
		"rests", res.Stats.InsertedRests,
	)
	writeJSON(w, http.StatusOK, res)
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger(r).Warn("request failed", "status", status, "err", err)
	writeJSON(w, status, map[string]string{
		"error":     err.Error(),
		"requestId": w.Header().Get(requestIDHeader),
	})
}

// configFromQuery overlays the query parameters on DefaultConfig.
func configFromQuery(q url.Values) (drumscribe.Config, error) {
	cfg := drumscribe.DefaultConfig()

	floats := []struct {
		key string
		dst *float64
	}{
		{"bpm", &cfg.BPM},
		{"threshold", &cfg.OnsetThreshold},
		{"minGap", &cfg.MinInterOnsetMs},
		{"restMin", &cfg.RestMinMs},
		{"silenceRms", &cfg.SilenceRMSThreshold},
	}
	for _, f := range floats {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q is not a number", drumscribe.ErrInvalidConfig, f.key, v)
		}
		*f.dst = x
	}

	if v := q.Get("subdivision"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: subdivision=%q is not an integer", drumscribe.ErrInvalidConfig, v)
		}
		cfg.Subdivision = n
	}

	return cfg, cfg.Validate()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response", "err", err)
	}
}
