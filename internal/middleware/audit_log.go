package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/delivery-service/internal/domain/model"
)

// Context keys set by JWTAuth.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserName  = "user_name"
	ContextKeyUserRoles = "user_roles"
	ContextKeyClaims    = "user_claims"
)

// AuditLog records a business action through the global async logger.
// It is a no-op when no async logger is running.
func AuditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	record(newAuditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed business action.
func AuditLogError(c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	record(entry)
}

func newAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	entry.UserID = c.GetString(ContextKeyUserID)
	entry.UserEmail = c.GetString(ContextKeyUserEmail)
	return entry
}

func record(entry *model.LogEntry) {
	if al := GetAsyncLogger(); al != nil {
		al.Log(entry)
	}
}
