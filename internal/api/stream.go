// GigRadar - Touring Act Discovery and Routing Analysis
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gigradar

package api

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gigradar/internal/models"
)

// ndjsonSink streams discovery frames as newline-delimited JSON,
// flushing after each frame so clients see progress immediately.
// It satisfies discovery.Sink.
type ndjsonSink struct {
	enc     *json.Encoder
	flusher http.Flusher
}

func newNDJSONSink(w io.Writer, flusher http.Flusher) *ndjsonSink {
	return &ndjsonSink{
		enc:     json.NewEncoder(w),
		flusher: flusher,
	}
}

// Emit writes one frame and flushes. Encode appends the newline that
// delimits NDJSON records.
func (s *ndjsonSink) Emit(frame *models.StreamFrame) error {
	if err := s.enc.Encode(frame); err != nil {
		return err
	}
	if s.flusher != nil {
		s.flusher.Flush()
	}
	return nil
}
