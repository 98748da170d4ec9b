package middleware

import (
	"crypto/subtle"

	"recipe-nutrition/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyHeader 管理端 API key 標頭
const APIKeyHeader = "X-API-Key"

// AdminOnly 驗證 X-API-Key。未設定任何 key 時管理端點一律拒絕。
func AdminOnly(keys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(keys) == 0 {
			abortWithError(c, common.ErrForbidden, "admin API is disabled")
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" || !validKey(keys, key) {
			common.LogWarn("Admin authentication failed",
				zap.String("ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
				zap.String("api_key", key),
			)
			abortWithError(c, common.ErrUnauthorized, "missing or invalid "+APIKeyHeader)
			return
		}

		c.Next()
	}
}

func validKey(keys []string, key string) bool {
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}
