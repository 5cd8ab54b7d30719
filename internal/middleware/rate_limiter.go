package middleware

import (
	"net/http"
	"sync"
	"time"

	"ofrendas/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana counts requests of one client IP inside the current window.
type ventana struct {
	count int
	fin   time.Time
}

type limitador struct {
	mu       sync.Mutex
	limit    int
	duracion time.Duration
	ips      map[string]*ventana
	ahora    func() time.Time
}

func newLimitador(limit int, duracion time.Duration) *limitador {
	return &limitador{limit: limit, duracion: duracion, ips: make(map[string]*ventana), ahora: time.Now}
}

// permitir counts one request for ip and returns the end of its window
// and whether the request fits.
func (l *limitador) permitir(ip string) (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.ahora()
	v, ok := l.ips[ip]
	if !ok || now.After(v.fin) {
		v = &ventana{fin: now.Add(l.duracion)}
		l.ips[ip] = v
	}
	v.count++
	return v.fin, v.count <= l.limit
}

// purgar drops the windows that already ended.
func (l *limitador) purgar() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.ahora()
	n := 0
	for ip, v := range l.ips {
		if now.After(v.fin) {
			delete(l.ips, ip)
			n++
		}
	}
	return n
}

// RateLimiter allows limit requests per window and client IP. Expired
// windows are purged every 5 minutes.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimitador(limit, window)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := l.purgar(); n > 0 {
				log.Debug().Int("entries_purged", n).Msg("rate limiter purged")
			}
		}
	}()

	return func(c *gin.Context) {
		fin, ok := l.permitir(c.ClientIP())
		if !ok {
			c.Header("Retry-After", fin.UTC().Format(http.TimeFormat))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
