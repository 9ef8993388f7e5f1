package main

import (
	"Gin_postgres_redis_game_loans/app"
	"Gin_postgres_redis_game_loans/config"
	"Gin_postgres_redis_game_loans/routes"
	"log"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := application.Config.Port
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
