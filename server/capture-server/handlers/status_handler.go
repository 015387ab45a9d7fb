package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeti47/cryosnap/server/core/snapshots"
)

// GetStatus handles GET /status
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, snapshots.CurrentStatus())
}

// GetHealth handles GET /health
func GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "capture-server",
	})
}
