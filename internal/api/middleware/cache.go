package middleware

import (
	"bytes"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cachedResponse сохраненный ответ для повторной отдачи
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// captureWriter копит тело ответа, не мешая записи клиенту
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache кэширует успешные GET ответы на короткий TTL
// Используется для эндпоинтов доступности: списки свободных и занятых
// интервалов опрашиваются часто, а устаревание на TTL допустимо
type ResponseCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewResponseCache создает кэш ответов с заданным TTL
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		cache: gocache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

// Middleware возвращает http middleware, отдающий закэшированные GET ответы
func (c *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if entry, ok := c.cache.Get(key); ok {
			cached := entry.(*cachedResponse)
			w.Header().Set("Content-Type", cached.contentType)
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(cached.status)
			_, _ = w.Write(cached.body)
			return
		}

		capture := &captureWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(capture, r)

		// Кэшируем только успешные ответы
		if capture.status == http.StatusOK {
			c.cache.Set(key, &cachedResponse{
				status:      capture.status,
				contentType: capture.Header().Get("Content-Type"),
				body:        capture.buf.Bytes(),
			}, c.ttl)
		}
	})
}
