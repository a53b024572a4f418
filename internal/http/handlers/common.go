package handlers

import (
	"net/http"
	"sync"

	intconfig "passgate-backend/internal/config"
	"passgate-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var (
	envMu sync.RWMutex
	env   intconfig.Env
)

// Configure stores the loaded environment for handlers that need it
// (JWT secret, event tag). Called once from the router.
func Configure(e intconfig.Env) {
	envMu.Lock()
	defer envMu.Unlock()
	env = e
}

func currentEnv() intconfig.Env {
	envMu.RLock()
	defer envMu.RUnlock()
	return env
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
