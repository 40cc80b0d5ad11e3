package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter mounts every route on a fresh engine. staticDir may be empty.
func NewRouter(digests *DigestHandler, monitoring *MonitoringHandler, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	r.GET("/generate-cybersecurity-digest", digests.GenerateDigest)
	r.GET("/health", monitoring.GetHealth)
	r.GET("/metrics", monitoring.GetMetrics)

	if staticDir != "" {
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return r
}
