package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CallDashboard/internal/api/handlers"
)

const (
	msgTooManyRequests = "too many requests"

	// visitorTTL время, после которого неактивный клиент забывается
	visitorTTL = 10 * time.Minute
)

// RateLimitMetrics интерфейс метрик ограничителя
type RateLimitMetrics interface {
	RecordRateLimited()
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничитель частоты запросов по IP клиента
type RateLimiter struct {
	mu         sync.Mutex
	visitors   map[string]*visitor
	limit      rate.Limit
	burst      int
	trustProxy bool // адрес клиента берется из X-Forwarded-For
	metrics    RateLimitMetrics
	now        func() time.Time
}

// NewRateLimiter создает ограничитель: rps запросов в секунду с пиком burst на один IP.
// X-Forwarded-For учитывается только при trustProxy, иначе клиент может подменить свой адрес.
func NewRateLimiter(rps float64, burst int, trustProxy bool, metrics RateLimitMetrics) *RateLimiter {
	return &RateLimiter{
		visitors:   make(map[string]*visitor),
		limit:      rate.Limit(rps),
		burst:      burst,
		trustProxy: trustProxy,
		metrics:    metrics,
		now:        time.Now,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// Limit отвечает 429, если клиент превысил лимит
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientIP(r, rl.trustProxy)).Allow() {
			rl.metrics.RecordRateLimited()
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup периодически удаляет неактивных клиентов, пока ctx не отменен
func (rl *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rl.evict()
		}
	}
}

func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-visitorTTL)
	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}

// clientIP адрес соединения или, за доверенным прокси, первый адрес из X-Forwarded-For
func clientIP(r *http.Request, trustProxy bool) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); trustProxy && forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
