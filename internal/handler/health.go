package handler

import (
	"context"
	"net/http"
	"time"

	"ofrendas/internal/infra"
	"ofrendas/internal/store"

	"github.com/gin-gonic/gin"
)

// Breaker exposes the remote circuit breaker state.
type Breaker interface {
	State() infra.CBState
}

// Health reports local store reachability and the remote breaker state.
// An open breaker does not fail the check: the app keeps working offline.
func Health(st store.Store, remoto Breaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storeStatus := "connected"
		var tema string
		if _, err := st.Get(ctx, store.ClaveTema, &tema); err != nil {
			storeStatus = "error"
		}

		status := http.StatusOK
		if storeStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":     status == http.StatusOK,
			"store":  storeStatus,
			"remote": remoto.State().String(),
		})
	}
}
