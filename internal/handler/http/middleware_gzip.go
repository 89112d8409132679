package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/jobwise/internal/app"
	"github.com/MKhiriev/jobwise/internal/utils"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func acceptsGZip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// withGZip inflates gzip request bodies and compresses responses for clients
// that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := inflateBody(r.Body)
			if err != nil {
				utils.WriteMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !acceptsGZip(r) {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}

		next.ServeHTTP(gw, r)

		if gw.compress {
			zw.Close()
		}
		zw.Reset(io.Discard)
		gzipWriters.Put(zw)
	})
}

// inflateBody wraps body in a pooled gzip reader that goes back to the pool
// when the body is closed.
func inflateBody(body io.ReadCloser) (io.ReadCloser, error) {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(body); err != nil {
		gzipReaders.Put(zr)
		return nil, err
	}

	return &wrappedReadCloser{
		Reader: zr,
		OnClose: func() {
			zr.Close()
			gzipReaders.Put(zr)
		},
	}, nil
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (rc *wrappedReadCloser) Close() error {
	if rc.OnClose != nil {
		rc.OnClose()
	}
	return nil
}

// gzipResponseWriter compresses the body unless the status has none
// (204, 304).
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	compress    bool
}

func (gw *gzipResponseWriter) WriteHeader(statusCode int) {
	if gw.wroteHeader {
		return
	}
	gw.wroteHeader = true

	gw.compress = statusCode != http.StatusNoContent && statusCode != http.StatusNotModified
	if gw.compress {
		h := gw.Header()
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
	}
	gw.ResponseWriter.WriteHeader(statusCode)
}

func (gw *gzipResponseWriter) Write(p []byte) (int, error) {
	if !gw.wroteHeader {
		gw.WriteHeader(http.StatusOK)
	}
	if gw.compress {
		return gw.zw.Write(p)
	}
	return gw.ResponseWriter.Write(p)
}

func (gw *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return gw.ResponseWriter
}
