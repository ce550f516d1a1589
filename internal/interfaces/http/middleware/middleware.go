package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// AppConfig monta a configuração do fiber. Com proxyHeader definido, c.IP() lê o IP do cliente
// desse cabeçalho (primeiro IP válido), e o limite por IP passa a valer por cliente atrás do proxy.
func AppConfig(proxyHeader string) fiber.Config {
	return fiber.Config{
		Prefork:            false,
		BodyLimit:          1 * 1024 * 1024,
		ReadTimeout:        5 * time.Second,
		WriteTimeout:       30 * time.Second,
		IdleTimeout:        120 * time.Second,
		ProxyHeader:        proxyHeader,
		EnableIPValidation: proxyHeader != "",
	}
}

func SetupMiddlewares(app *fiber.App, allowedOrigins string) {
	app.Use(recover.New())

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
	}))

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, If-None-Match",
		ExposeHeaders:    "ETag, Content-Disposition",
		AllowCredentials: allowedOrigins != "*",
		MaxAge:           300, // 5 minutes
	}))

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	app.Use(etag.New())

	app.Use(PerformanceLogger())
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public fiber.Router
	Auth   fiber.Router
	Admin  fiber.Router
}

// SetupRouteGroups configura os grupos de rotas com seus respectivos middlewares
func SetupRouteGroups(app *fiber.App, authMiddleware fiber.Handler) RouteGroups {
	// Grupo público (sem autenticação)
	public := app.Group("/")

	auth := app.Group("/auth")

	// Grupo do painel (com autenticação)
	admin := app.Group("/admin")
	admin.Use(authMiddleware)

	return RouteGroups{
		Public: public,
		Auth:   auth,
		Admin:  admin,
	}
}
