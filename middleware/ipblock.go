package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"hotelify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	ipBlockPrefix   = "ipblock:"
	ipBlockDuration = 10 * time.Minute
	maxScanBytes    = 1 << 20 // scan at most 1 MiB of the body
)

// Patterns that indicate script injection attempts in request payloads.
var suspiciousPatterns = []string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"eval(",
	"document.cookie",
}

// IPBlockMiddleware rejects requests from temporarily blocked addresses and
// blocks addresses that send script-injection payloads. Blocks are stored in
// Redis with a TTL so they expire without manual cleanup.
func IPBlockMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		ip := getClientIP(c)
		blockCache := utils.GetBlockCacheClient()

		if blockCache != nil {
			if _, err := blockCache.Get(c.Request.Context(), ipBlockPrefix+ip).Result(); err == nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": "Access temporarily blocked",
				})
				return
			} else if err != redis.Nil {
				logger.Warn("Block cache lookup failed", zap.String("ip", ip), zap.Error(err))
			}
		}

		if containsSuspicious(c.Request.URL.RawQuery) || requestBodySuspicious(c) {
			if blockCache != nil {
				if err := blockCache.Set(c.Request.Context(), ipBlockPrefix+ip, "1", ipBlockDuration).Err(); err != nil {
					logger.Warn("Failed to record IP block", zap.String("ip", ip), zap.Error(err))
				}
			}
			logger.Warn("Blocked request with suspicious payload", zap.String("ip", ip), zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Request rejected",
			})
			return
		}

		c.Next()
	}
}

// requestBodySuspicious peeks at the request body without consuming it.
func requestBodySuspicious(c *gin.Context) bool {
	if c.Request.Body == nil {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxScanBytes))
	if err != nil {
		return false
	}
	// Restore the body so handlers can still bind it.
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
	return containsSuspicious(string(body))
}

func containsSuspicious(s string) bool {
	if s == "" {
		return false
	}
	lowered := strings.ToLower(s)
	for _, p := range suspiciousPatterns {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
