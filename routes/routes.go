package routes

import (
	"pokernight/controllers/admin"
	"pokernight/controllers/auth"
	"pokernight/controllers/player"
	"pokernight/controllers/session"
	"pokernight/controllers/vision"
	"pokernight/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Post("/auth/login", auth.Login)
	app.Post("/players/register", player.Register)

	playerroutes := app.Group("/players", middlewares.PlayerAuthMiddleware)
	playerroutes.Get("/me", player.Me)
	playerroutes.Put("/me", player.UpdateMe)
	playerroutes.Get("/leaderboard", player.Leaderboard)

	sessionroutes := app.Group("/sessions", middlewares.PlayerAuthMiddleware)
	sessionroutes.Post("/checkin", session.CheckIn)
	sessionroutes.Post("/checkout", session.CheckOut)
	sessionroutes.Get("/active", session.Active)
	sessionroutes.Get("/", session.List)
	sessionroutes.Put("/:id", session.Update)

	app.Get("/chip-prices", middlewares.PlayerAuthMiddleware, admin.ListChipPrices)

	adminroutes := app.Group("/admin", middlewares.PlayerAuthMiddleware, middlewares.AdminOnly)
	adminroutes.Post("/sessions/:id/override", admin.OverrideSession)
	adminroutes.Post("/players/:player_id/recalculate", admin.RecalculatePlayer)
	adminroutes.Put("/chip-prices", admin.UpdateChipPrices)
	adminroutes.Get("/audit", admin.AuditTrail)

	visionroutes := app.Group("/vision", middlewares.PlayerAuthMiddleware)
	visionroutes.Post("/analyze", vision.Analyze)
}
