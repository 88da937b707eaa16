package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// withGZip decodes gzip request bodies and compresses responses for clients
// that advertise gzip support. Relayed payloads are JSON and compress well.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			decoded, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = &decodedBody{decoded: decoded, original: r.Body}
			// Downstream readers see a plain body.
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzip.NewWriter(w)
		defer zw.Close()

		next.ServeHTTP(&compressedWriter{ResponseWriter: w, zw: zw}, r)
	})
}

type decodedBody struct {
	decoded  *gzip.Reader
	original io.ReadCloser
}

func (b *decodedBody) Read(p []byte) (int, error) { return b.decoded.Read(p) }

func (b *decodedBody) Close() error {
	if err := b.decoded.Close(); err != nil {
		return err
	}
	return b.original.Close()
}

type compressedWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *compressedWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *compressedWriter) Write(p []byte) (int, error) {
	if w.Header().Get("Content-Encoding") == "" {
		w.Header().Set("Content-Encoding", "gzip")
	}
	return w.zw.Write(p)
}
