//go:build release
// +build release

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yeti47/cryosnap/server/core/config"
)

// initializeGin sets up Gin in release mode for production builds
func initializeGin(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Without configured proxies no forwarding headers are trusted
	var proxies []string
	if len(cfg.TrustedProxies) > 0 {
		proxies = cfg.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		log.Fatalf("Invalid trusted proxies: %v", err)
	}

	return router
}
