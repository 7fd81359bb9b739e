package handler

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credifacil/backend/internal/logger"
)

// How long the provisional "in-progress" lock survives if the first attempt
// never finishes writing its response.
const provisionalLockTTL = 60 * time.Second

const idempotencyHeader = "Idempotency-Key"

// idemEntry is the per-key record kept in Redis: first the provisional lock,
// then the captured response once the handler finishes.
type idemEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	CreatedAt  time.Time `json:"created_at"`
}

// responseRecorder tees the handler's response so it can be replayed for a
// repeated key.
type responseRecorder struct {
	w    http.ResponseWriter
	buf  bytes.Buffer
	code int
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.w.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.code = statusCode
	r.w.WriteHeader(statusCode)
}

// Idempotency deduplicates mutating requests that carry an Idempotency-Key
// header. The first request takes a provisional lock, runs, and stores its
// response for ttl; a repeat with the same key and body gets the stored
// response back without re-running the handler. Requests without the header
// pass straight through, keeping the original at-least-once contract.
func Idempotency(rdb *redis.Client, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			var body []byte
			if r.Body != nil {
				body, _ = io.ReadAll(r.Body)
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			sum := sha256.Sum256(body)
			bodyHash := hex.EncodeToString(sum[:])
			redisKey := "idem:" + r.Method + ":" + r.URL.Path + ":" + key

			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			entry := idemEntry{InProgress: true, BodySHA256: bodyHash, CreatedAt: time.Now().UTC()}
			locked, err := setProvisional(ctx, rdb, redisKey, entry)
			if err != nil {
				respondError(w, http.StatusServiceUnavailable, "idempotency store unavailable")
				return
			}

			if !locked {
				cur, err := loadEntry(ctx, rdb, redisKey)
				if err != nil {
					respondError(w, http.StatusServiceUnavailable, "idempotency store unavailable")
					return
				}
				if cur.BodySHA256 != bodyHash {
					respondError(w, http.StatusUnprocessableEntity, "idempotency key reused with a different body")
					return
				}
				if cur.InProgress {
					respondError(w, http.StatusConflict, "request with this idempotency key is in progress")
					return
				}

				logger.FromContext(r.Context()).Info("replaying idempotent response", "key", key)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(cur.Code)
				_, _ = w.Write(cur.Body)
				return
			}

			rec := &responseRecorder{w: w, code: http.StatusOK}
			next.ServeHTTP(rec, r)

			entry.InProgress = false
			entry.Code = rec.code
			entry.Body = rec.buf.Bytes()
			if err := storeEntry(ctx, rdb, redisKey, entry, ttl); err != nil {
				// The response already went out; a failed store only costs
				// dedup for this key.
				logger.FromContext(r.Context()).Warn("failed to store idempotent response", "key", key, "error", err)
			}
		})
	}
}

func setProvisional(ctx context.Context, rdb *redis.Client, key string, entry idemEntry) (bool, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return false, err
	}
	return rdb.SetNX(ctx, key, raw, provisionalLockTTL).Result()
}

func storeEntry(ctx context.Context, rdb *redis.Client, key string, entry idemEntry, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, raw, ttl).Err()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idemEntry, error) {
	var entry idemEntry
	raw, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return entry, err
	}
	err = json.Unmarshal(raw, &entry)
	return entry, err
}
