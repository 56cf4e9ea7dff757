package config

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp builds the gin engine with CORS, the melody hub and the cron scheduler
func InitApp(cfg Config) (*gin.Engine, *melody.Melody, *cron.Cron) {
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	router.SetTrustedProxies(nil)

	m := melody.New()
	c := cron.New()

	return router, m, c
}

func corsConfig(origins []string) cors.Config {
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Request-ID")
	configCors.AddExposeHeaders("X-Request-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false

	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	configCors.AllowOriginFunc = func(origin string) bool {
		return len(allowed) == 0 || allowed[origin]
	}
	return configCors
}

// InitWebSocket mounts the live room channel behind the given middleware
func InitWebSocket(router *gin.Engine, m *melody.Melody, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, func(c *gin.Context) {
		m.HandleRequest(c.Writer, c.Request)
	})
	router.GET("/ws", handlers...)
	log.Println("WebSocket initialized successfully")
}
