package main

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// publicPaths never require the API key
var publicPaths = []string{"/ping", "/health", "/metrics", "/docs", "/openapi", "/schemas"}

// apiKeyAuth rejects requests without the configured X-API-Key. An empty
// key disables the check.
func apiKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" || c.Request.Method == http.MethodOptions || isPublic(c.Request.URL.Path) {
			c.Next()
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader(apiKeyHeader)), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"title":  http.StatusText(http.StatusUnauthorized),
				"status": http.StatusUnauthorized,
				"detail": "missing or invalid " + apiKeyHeader,
			})
			return
		}
		c.Next()
	}
}

func isPublic(path string) bool {
	for _, prefix := range publicPaths {
		if path == prefix || strings.HasPrefix(path, prefix+"/") || strings.HasPrefix(path, prefix+".") {
			return true
		}
	}
	return false
}
