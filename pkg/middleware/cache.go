package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
	"github.com/vfg2006/restaurant-analytics-api/pkg/log"
)

// CacheMiddleware memoiza respostas GET bem-sucedidas pelo par
// (path, query string) durante o TTL informado. É registrado rota a rota,
// o que permite TTLs distintos (filtros usam 1h) e deixa o export de CSV
// de fora por completo.
func CacheMiddleware(c cache.Cache, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.Path + "?" + r.URL.Query().Encode()

			if payload, ok := c.Get(key); ok {
				log.ForContext(r.Context()).WithField("path", r.URL.Path).Debug("cache: resposta servida do cache")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(payload)
				return
			}

			recorder := &cachingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(recorder, r)

			// Apenas respostas 200 entram no cache; erros são recomputados.
			if recorder.statusCode == http.StatusOK {
				c.Set(key, recorder.body.Bytes(), ttl)
			}
		})
	}
}

// cachingResponseWriter duplica o corpo escrito para capturar o payload
// sem interferir na resposta original.
type cachingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *cachingResponseWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cachingResponseWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}
