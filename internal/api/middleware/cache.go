package middleware

import (
	"bytes"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cachedResponse сохраненный ответ для повторной отдачи
type cachedResponse struct {
	status int
	header http.Header
	body   []byte
}

// captureWriter копирует ответ хендлера для помещения в кеш
type captureWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.body.Write(p)
	return w.ResponseWriter.Write(p)
}

// ResponseCache кеширует успешные GET ответы по полному URL.
// Кешируются только статусы 200, остальные ответы проходят насквозь.
type ResponseCache struct {
	cache *gocache.Cache
}

// NewResponseCache создает кеш ответов с указанным TTL
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		cache: gocache.New(ttl, 2*ttl),
	}
}

// Middleware возвращает HTTP middleware, отдающий закешированный ответ
// при повторном запросе того же URL
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()

		if v, ok := c.cache.Get(key); ok {
			resp := v.(*cachedResponse)
			for name, values := range resp.header {
				for _, value := range values {
					w.Header().Add(name, value)
				}
			}
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(resp.status)
			_, _ = w.Write(resp.body)
			return
		}

		cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(cw, r)

		if cw.status == http.StatusOK {
			c.cache.Set(key, &cachedResponse{
				status: cw.status,
				header: w.Header().Clone(),
				body:   append([]byte(nil), cw.body.Bytes()...),
			}, gocache.DefaultExpiration)
		}
	})
}
