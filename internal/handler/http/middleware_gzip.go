// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

var compressResponses = middleware.Compress(compressionLevel, "application/json", "text/plain")

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip accepts gzip encoded request bodies and compresses JSON and text
// responses for clients that accept gzip or deflate.
func withGZip(next http.Handler) http.Handler {
	return decodeGZipBody(compressResponses(next))
}

func decodeGZipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Body == nil || !strings.Contains(req.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(req.Body); err != nil {
			gzipReaderPool.Put(zr)
			http.Error(w, "Invalid gzip data", http.StatusBadRequest)
			return
		}

		req.Body = &gzipBody{Reader: zr, source: req.Body}
		req.Header.Del("Content-Encoding")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

// gzipBody returns its reader to the pool once the handler closes the body.
type gzipBody struct {
	*gzip.Reader
	source interface{ Close() error }
	closed bool
}

func (b *gzipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	err := b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	if srcErr := b.source.Close(); err == nil {
		err = srcErr
	}
	return err
}
