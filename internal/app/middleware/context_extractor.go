package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const LogDetailsKey contextKey = "logDetails"

var sensitiveHeaders = []string{"Authorization", "Cookie", "X-Api-Key"}

func extractHeaders(headers map[string][]string) map[string]interface{} {
	result := make(map[string]interface{})
	for key, values := range headers {
		if contains(sensitiveHeaders, key) {
			result[key] = "*****"
			continue
		}
		result[key] = values[0]
	}
	return result
}

// AttachRequestDetails assigns a request id, stores the request details
// in the request context for the logger, and emits one access-log line
// per request.
func AttachRequestDetails() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestTime := time.Now().UTC()

		details := models.RequestDetails{
			RequestID:     uuid.New().String(),
			IP:            c.ClientIP(),
			UserAgent:     c.Request.UserAgent(),
			HTTPMethod:    c.Request.Method,
			Path:          c.Request.URL.String(),
			OperationName: extractFirstTwoSegments(c.HandlerName()),
			RequestTime:   requestTime.Format(time.RFC3339Nano),
			RequestParams: map[string]interface{}{
				"headers": extractHeaders(c.Request.Header),
				"query":   c.Request.URL.Query(),
			},
		}

		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), LogDetailsKey, details))
		c.Next()

		details.Status = c.Writer.Status()
		details.ResponseTime = time.Now().UTC().Format(time.RFC3339Nano)
		details.ResponseParams = map[string]interface{}{
			"headers": extractHeaders(c.Writer.Header()),
		}

		logMessage, err := json.Marshal(details)
		if err != nil {
			log.Printf("Error encoding log message to JSON: %v", err)
			return
		}
		fmt.Println(string(logMessage))
	}
}

func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

func extractFirstTwoSegments(handlerName string) string {
	segments := strings.Split(handlerName, "/")
	if len(segments) > 2 {
		return strings.Join(segments[:2], "/")
	}
	return handlerName
}
