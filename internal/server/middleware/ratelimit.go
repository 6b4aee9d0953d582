package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter ограничивает частоту запросов по ключу (IP клиента)
// по схеме token bucket: каждому ключу выдается rate токенов на окно,
// исчерпание токенов означает отказ до следующего пополнения
type RateLimiter struct {
	buckets  map[string]*bucket
	logger   *slog.Logger
	cleanupC chan struct{}
	rate     int
	window   time.Duration
	mu       sync.RWMutex
}

type bucket struct {
	lastRefill time.Time
	tokens     int
	mu         sync.Mutex
}

// NewRateLimiter создает limiter на rate запросов за window
// и запускает фоновую уборку неактивных bucket-ов
func NewRateLimiter(rate int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		buckets:  make(map[string]*bucket),
		rate:     rate,
		window:   window,
		logger:   logger,
		cleanupC: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop останавливает фоновую уборку
func (rl *RateLimiter) Stop() {
	close(rl.cleanupC)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropStaleBuckets()
		case <-rl.cleanupC:
			return
		}
	}
}

// dropStaleBuckets удаляет ключи, не появлявшиеся дольше двух окон,
// иначе карта растет на каждый уникальный IP без ограничения
func (rl *RateLimiter) dropStaleBuckets() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, b := range rl.buckets {
		b.mu.Lock()
		stale := now.Sub(b.lastRefill) > rl.window*2
		b.mu.Unlock()
		if stale {
			delete(rl.buckets, key)
		}
	}
}

// Allow списывает токен для ключа и сообщает, пропущен ли запрос
func (rl *RateLimiter) Allow(key string) bool {
	b := rl.bucketFor(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.Sub(b.lastRefill) >= rl.window {
		b.tokens = rl.rate
		b.lastRefill = now
	}

	if b.tokens == 0 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) bucketFor(key string) *bucket {
	rl.mu.RLock()
	b, ok := rl.buckets[key]
	rl.mu.RUnlock()
	if ok {
		return b
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	// Конкурирующий запрос мог успеть создать bucket
	if b, ok := rl.buckets[key]; ok {
		return b
	}
	b = &bucket{tokens: rl.rate, lastRefill: time.Now()}
	rl.buckets[key] = b
	return b
}

// RateLimitMiddleware ограничивает все запросы единым лимитом по IP
func RateLimitMiddleware(rate int, window time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(rate, window, logger)
	pick := func(r *http.Request) *RateLimiter { return limiter }
	return limitWith(pick, logger)
}

// PathRateLimit задает отдельный лимит для конкретного пути
type PathRateLimit struct {
	Path   string
	Rate   int
	Window time.Duration
}

// RateLimitByPathMiddleware дает отдельные лимиты перечисленным путям
// (логин и регистрация живут с более строгими, чем корзина) и общий
// дефолтный лимит всем остальным
func RateLimitByPathMiddleware(limits []PathRateLimit, defaultRate int, defaultWindow time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	limiters := make(map[string]*RateLimiter, len(limits))
	for _, limit := range limits {
		limiters[limit.Path] = NewRateLimiter(limit.Rate, limit.Window, logger)
	}
	defaultLimiter := NewRateLimiter(defaultRate, defaultWindow, logger)

	pick := func(r *http.Request) *RateLimiter {
		if limiter, ok := limiters[r.URL.Path]; ok {
			return limiter
		}
		return defaultLimiter
	}
	return limitWith(pick, logger)
}

// limitWith оборачивает handler проверкой лимита; выбор limiter-а
// на запрос делегируется pick
func limitWith(pick func(*http.Request) *RateLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := getClientIP(r)
			if !pick(r).Allow(key) {
				logger.Warn("Rate limit exceeded",
					"ip", key,
					"method", r.Method,
					"path", r.URL.Path,
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded, please try again later"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP извлекает IP клиента: прокси-заголовки приоритетнее
// RemoteAddr, из X-Forwarded-For берется первый адрес цепочки
func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return first
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
