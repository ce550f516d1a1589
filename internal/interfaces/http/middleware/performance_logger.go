package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// monitoredRoutes são os prefixos cujas requisições têm o tempo registrado
var monitoredRoutes = []string{
	"/admin",
	"/surveys",
}

// slowRequest marca no log as requisições acima desse tempo
const slowRequest = 500 * time.Millisecond

func isMonitored(path string) bool {
	for _, route := range monitoredRoutes {
		if strings.HasPrefix(path, route) {
			return true
		}
	}
	return false
}

// PerformanceLogger mede o tempo de resposta das rotas do painel e da submissão
func PerformanceLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if !isMonitored(path) {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		marker := "⏱️"
		if duration > slowRequest {
			marker = "🐢"
		}
		log.Printf(
			"%s [PERFORMANCE] %s %s - %d - Duration: %v - Query params: %s",
			marker,
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
			c.Request().URI().QueryArgs().String(),
		)

		return err
	}
}
