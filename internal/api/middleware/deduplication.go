package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"recipe-nutrition/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deduplicator 在時間窗內拒絕內容相同的重複寫入請求
type Deduplicator struct {
	mu       sync.Mutex
	window   time.Duration
	requests map[string]time.Time
}

// NewDeduplicator 創建去重器；window 非正數時使用 1 秒
func NewDeduplicator(window time.Duration) *Deduplicator {
	if window <= 0 {
		window = time.Second
	}
	return &Deduplicator{
		window:   window,
		requests: make(map[string]time.Time),
	}
}

// Seen 記錄指紋，若在時間窗內已出現過則回傳 true
func (d *Deduplicator) Seen(fingerprint string, now time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if last, ok := d.requests[fingerprint]; ok && now.Sub(last) <= d.window {
		return true
	}
	d.requests[fingerprint] = now
	return false
}

// Forget 移除指紋，讓相同請求可以立即重試
func (d *Deduplicator) Forget(fingerprint string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.requests, fingerprint)
}

// Cleanup 清除過期的指紋
func (d *Deduplicator) Cleanup(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for k, t := range d.requests {
		if now.Sub(t) > 10*d.window {
			delete(d.requests, k)
		}
	}
}

func (d *Deduplicator) startCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for now := range ticker.C {
		d.Cleanup(now)
	}
}

// Deduplication 請求去重中間件，只處理寫入方法；處理中的請求也會擋下相同的重複請求
func Deduplication(window time.Duration) gin.HandlerFunc {
	d := NewDeduplicator(window)
	go d.startCleanup()

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			c.Next()
			return
		}

		// 生成請求指紋
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}
			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewReader(body))

			if len(body) > 0 {
				hash := sha256.Sum256(body)
				fingerprint += ":" + hex.EncodeToString(hash[:])
			}
		}

		if d.Seen(fingerprint, time.Now()) {
			common.LogInfo("Duplicate request rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()),
			)
			abortWithError(c, common.ErrTooManyRequests, "duplicate request")
			return
		}

		c.Next()

		// 只有成功的寫入才佔用時間窗，失敗的請求重試時應得到相同的錯誤
		if status := c.Writer.Status(); status < 200 || status >= 300 {
			d.Forget(fingerprint)
		}
	}
}
