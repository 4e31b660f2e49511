// Filmscout - Content-Based Film Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmscout

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipResponseWriter wraps http.ResponseWriter to support gzip compression
type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.ResponseWriter.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.Writer.Write(b)
}

// gzipWriterPool pools gzip writers to reduce allocations
var gzipWriterPool = sync.Pool{
	New: func() interface{} {
		return gzip.NewWriter(io.Discard)
	},
}

// Compression gzips responses for clients that send Accept-Encoding: gzip.
// HEAD requests and 304 responses pass through untouched.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if r.Method == http.MethodHead || !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		defer gzipWriterPool.Put(gz)
		gz.Reset(w)

		gzw := &lazyGzipWriter{gz: gz, ResponseWriter: w}
		defer gzw.finish()
		next.ServeHTTP(gzw, r)
	})
}

// lazyGzipWriter decides on compression at WriteHeader time so bodiless
// responses such as 304 Not Modified are never wrapped.
type lazyGzipWriter struct {
	http.ResponseWriter
	gz      *gzip.Writer
	inner   *gzipResponseWriter
	decided bool
}

func (w *lazyGzipWriter) WriteHeader(status int) {
	if w.decided {
		return
	}
	w.decided = true
	if status == http.StatusNotModified || status == http.StatusNoContent {
		w.ResponseWriter.WriteHeader(status)
		return
	}
	w.ResponseWriter.Header().Set("Content-Encoding", "gzip")
	w.inner = &gzipResponseWriter{Writer: w.gz, ResponseWriter: w.ResponseWriter}
	w.inner.WriteHeader(status)
}

func (w *lazyGzipWriter) Write(b []byte) (int, error) {
	if !w.decided {
		w.WriteHeader(http.StatusOK)
	}
	if w.inner == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.inner.Write(b)
}

// finish flushes the gzip stream when one was started.
func (w *lazyGzipWriter) finish() {
	if w.inner != nil {
		_ = w.gz.Close() // response already committed
	}
}

func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		enc, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(enc), "gzip") {
			return strings.ReplaceAll(strings.TrimSpace(params), " ", "") != "q=0"
		}
	}
	return false
}
