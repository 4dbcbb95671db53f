package http

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"

	"github.com/MKhiriev/clumio-bot/internal/app"
	"github.com/MKhiriev/clumio-bot/internal/utils"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Accept-Encoding is removed before the request
// reaches downstream handlers, so handlers that compress on their own
// (promhttp) do not compress a second time.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")

		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			body, err := newGzipBody(req.Body)
			if err != nil {
				utils.WriteError(w, app.MsgInvalidGzipBody, http.StatusBadRequest)
				return
			}
			// the server only closes the body it created
			defer body.Close()

			req.Body = body
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}
		req.Header.Del("Accept-Encoding")
		w.Header().Add("Vary", "Accept-Encoding")

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, req)
	})
}

// gzipBody returns its pooled reader on the first Close.
type gzipBody struct {
	io.Reader
	once    sync.Once
	OnClose func()
}

func newGzipBody(src io.Reader) (*gzipBody, error) {
	zr := gzipReaderPool.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		gzipReaderPool.Put(zr)
		return nil, err
	}

	return &gzipBody{
		Reader: zr,
		OnClose: func() {
			_ = zr.Close()
			gzipReaderPool.Put(zr)
		},
	}, nil
}

func (b *gzipBody) Close() error {
	b.once.Do(func() {
		if b.OnClose != nil {
			b.OnClose()
		}
	})
	return nil
}

// gzipResponseWriter takes a pooled writer on the first body byte. Statuses
// that cannot carry a body are passed through uncompressed.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
	compressed  bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if bodyAllowed(statusCode) {
		w.compressed = true
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.compressed {
		return w.ResponseWriter.Write(data)
	}

	if w.zw == nil {
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	return w.zw.Write(data)
}

// finish flushes the gzip stream. A compressed response without a body still
// gets a valid empty stream.
func (w *gzipResponseWriter) finish() {
	if !w.compressed {
		return
	}
	if w.zw == nil {
		w.zw = gzipWriterPool.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	_ = w.zw.Close()
	gzipWriterPool.Put(w.zw)
	w.zw = nil
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status <= 199:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}
