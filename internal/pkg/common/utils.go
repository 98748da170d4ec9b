package common

import (
	"github.com/google/uuid"
)

// RequestIDHeader 請求 ID 標頭
const RequestIDHeader = "X-Request-ID"

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}
