// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package middleware

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// MinCompressSize is the smallest body that is gzipped.
const MinCompressSize = 1024

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipResponseWriter buffers the first MinCompressSize bytes and only then
// decides whether to compress. Status is held back until the decision.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz         *gzip.Writer
	buf        []byte
	statusCode int
	decided    bool
	compress   bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.statusCode == 0 {
		w.statusCode = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.decided {
		if w.compress {
			return w.gz.Write(b)
		}
		return w.ResponseWriter.Write(b)
	}

	w.buf = append(w.buf, b...)
	if len(w.buf) >= MinCompressSize {
		if err := w.decide(true); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

// decide commits the status line and flushes the buffer through the chosen
// path. compress is ignored when the handler already set an encoding.
func (w *gzipResponseWriter) decide(compress bool) error {
	w.decided = true
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}

	h := w.Header()
	if compress && h.Get("Content-Encoding") == "" {
		w.compress = true
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length") // Length will be different after compression
		w.gz.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(w.statusCode)
	if len(w.buf) == 0 {
		return nil
	}

	var err error
	if w.compress {
		_, err = w.gz.Write(w.buf)
	} else {
		_, err = w.ResponseWriter.Write(w.buf)
	}
	w.buf = nil
	return err
}

// finish flushes whatever the handler left buffered.
func (w *gzipResponseWriter) finish() error {
	if !w.decided {
		return w.decide(false)
	}
	if w.compress {
		return w.gz.Close()
	}
	return nil
}

// Compression middleware adds gzip compression to responses.
// Only bodies of MinCompressSize bytes or more are compressed.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsGzip(r.Header.Get("Accept-Encoding")) || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)

		gzw := &gzipResponseWriter{ResponseWriter: w, gz: gz}
		next.ServeHTTP(gzw, r)

		// Best-effort: the client may already be gone.
		_ = gzw.finish()
	})
}

// acceptsGzip reports whether an Accept-Encoding value allows gzip.
// A q-value of zero is an explicit refusal.
func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		q := strings.ReplaceAll(strings.TrimSpace(params), " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}
