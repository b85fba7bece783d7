package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires every resource under the /api prefix. Literal routes
// are registered before parameterized ones so fiber matches them first.
func RegisterRoutes(
	app *fiber.App,
	plans *SubscriptionPlanHandler,
	users *UserHandler,
	cards *RFIDCardHandler,
	stations *StationHandler,
	batteries *BatteryHandler,
	slots *SlotHandler,
	healthLogs *HealthLogHandler,
	swaps *SwapHandler,
	billings *BillingHandler,
) {
	api := app.Group("/api")

	api.Post("/subscription_plans", plans.Create)
	api.Get("/subscription_plans", plans.List)
	api.Get("/subscription_plans/:id", plans.Get)
	api.Put("/subscription_plans/:id", plans.Update)
	api.Delete("/subscription_plans/:id", plans.Delete)

	api.Post("/users", users.Create)
	api.Get("/users", users.List)
	api.Get("/users/:id", users.Get)
	api.Put("/users/:id", users.Update)
	api.Delete("/users/:id", users.Delete)
	api.Get("/users/:id/swaps", swaps.ListByUser)
	api.Get("/users/:id/monthly_billings", billings.ListByUser)

	api.Post("/rfid_cards", cards.Create)
	api.Get("/rfid_cards", cards.List)
	api.Get("/rfid_cards/by_code/:code", cards.GetByCode)
	api.Get("/rfid_cards/:id", cards.Get)
	api.Put("/rfid_cards/:id", cards.Update)
	api.Delete("/rfid_cards/:id", cards.Delete)

	api.Post("/stations", stations.Create)
	api.Get("/stations", stations.List)
	api.Get("/stations/:id", stations.Get)
	api.Put("/stations/:id", stations.Update)
	api.Delete("/stations/:id", stations.Delete)
	api.Get("/stations/:id/batteries", stations.ListBatteries)
	api.Get("/stations/:id/slots", stations.ListSlots)

	api.Post("/batteries", batteries.Create)
	api.Get("/batteries", batteries.List)
	api.Get("/batteries/:id", batteries.Get)
	api.Put("/batteries/:id", batteries.Update)
	api.Delete("/batteries/:id", batteries.Delete)
	api.Get("/batteries/:id/health_logs", batteries.ListHealthLogs)

	api.Post("/slots", slots.Create)
	api.Get("/slots", slots.List)
	api.Get("/slots/:id", slots.Get)
	api.Put("/slots/:id", slots.Update)
	api.Delete("/slots/:id", slots.Delete)
	api.Post("/slots/:id/assign_battery", slots.AssignBattery)
	api.Post("/slots/:id/remove_battery", slots.RemoveBattery)

	api.Post("/battery_health_logs", healthLogs.Create)
	api.Get("/battery_health_logs", healthLogs.List)
	api.Get("/battery_health_logs/:id", healthLogs.Get)
	api.Put("/battery_health_logs/:id", healthLogs.Update)
	api.Delete("/battery_health_logs/:id", healthLogs.Delete)

	api.Post("/swaps", swaps.Create)
	api.Get("/swaps", swaps.List)
	api.Get("/swaps/:id", swaps.Get)
	api.Put("/swaps/:id", swaps.Update)
	api.Delete("/swaps/:id", swaps.Delete)

	api.Post("/monthly_billings", billings.Create)
	api.Get("/monthly_billings", billings.List)
	api.Get("/monthly_billings/unpaid", billings.ListUnpaid)
	api.Get("/monthly_billings/:id", billings.Get)
	api.Put("/monthly_billings/:id", billings.Update)
	api.Delete("/monthly_billings/:id", billings.Delete)
	api.Post("/monthly_billings/:id/mark_paid", billings.MarkPaid)
}
