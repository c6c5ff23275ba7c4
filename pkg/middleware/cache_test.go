package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-analytics-api/pkg/cache"
)

func countingHandler(status int, body string) (http.Handler, *int) {
	calls := 0
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}), &calls
}

func TestCacheMiddleware_MemoizaRespostaOK(t *testing.T) {
	next, calls := countingHandler(http.StatusOK, `{"totalRevenue":100}`)
	handler := CacheMiddleware(cache.NewMemoryCache(), 5*time.Minute)(next)

	for i := 0; i < 3; i++ {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics/overview?startDate=2024-06-01", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, `{"totalRevenue":100}`, recorder.Body.String())
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	}

	assert.Equal(t, 1, *calls)
}

func TestCacheMiddleware_QueryStringsDiferentesNaoColidem(t *testing.T) {
	next, calls := countingHandler(http.StatusOK, `{}`)
	handler := CacheMiddleware(cache.NewMemoryCache(), 5*time.Minute)(next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics/overview?channelId=1", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics/overview?channelId=2", nil))

	assert.Equal(t, 2, *calls)
}

func TestCacheMiddleware_ErroNaoEntraNoCache(t *testing.T) {
	next, calls := countingHandler(http.StatusInternalServerError, `{"error":"Internal server error"}`)
	handler := CacheMiddleware(cache.NewMemoryCache(), 5*time.Minute)(next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics/overview", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics/overview", nil))

	assert.Equal(t, 2, *calls)
}

func TestCacheMiddleware_MetodosNaoGetPassamDireto(t *testing.T) {
	next, calls := countingHandler(http.StatusOK, `{}`)
	handler := CacheMiddleware(cache.NewMemoryCache(), 5*time.Minute)(next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/dashboards", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/dashboards", nil))

	assert.Equal(t, 2, *calls)
}
