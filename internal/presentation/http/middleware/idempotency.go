package middleware

import (
	"bytes"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a recorded response is replayed
	IdempotencyKeyTTL = 24 * time.Hour
)

type idempotencyRecord struct {
	status    int
	body      []byte
	createdAt time.Time
}

// IdempotencyStore keeps recorded responses in memory, matching the
// session lifetime of the rest of the state
type IdempotencyStore struct {
	mu      sync.Mutex
	records map[string]*idempotencyRecord
}

// NewIdempotencyStore creates an idempotency store
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{records: make(map[string]*idempotencyRecord)}
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware replays the recorded response for a repeated mutation
// carrying the same Idempotency-Key from the same user
func (s *IdempotencyStore) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PUT", "PATCH":
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if email, exists := c.Get("user_email"); exists {
			key = email.(string) + ":" + key
		}

		s.mu.Lock()
		if rec, ok := s.records[key]; ok && time.Since(rec.createdAt) < IdempotencyKeyTTL {
			s.mu.Unlock()
			c.Data(rec.status, "application/json", rec.body)
			c.Abort()
			return
		}
		s.mu.Unlock()

		writer := responseWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() < 500 {
			s.mu.Lock()
			s.records[key] = &idempotencyRecord{
				status:    c.Writer.Status(),
				body:      writer.body.Bytes(),
				createdAt: time.Now(),
			}
			s.mu.Unlock()
		}
	}
}
