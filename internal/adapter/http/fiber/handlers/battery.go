package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type BatteryHandler struct {
	service ports.FleetService
	log     *zap.Logger
}

func NewBatteryHandler(service ports.FleetService, log *zap.Logger) *BatteryHandler {
	return &BatteryHandler{
		service: service,
		log:     log,
	}
}

func (h *BatteryHandler) Create(c *fiber.Ctx) error {
	var battery domain.Battery
	if err := c.BodyParser(&battery); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateBattery(c.Context(), &battery)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Battery created successfully",
		"battery_id": created.ID,
	})
}

func (h *BatteryHandler) List(c *fiber.Ctx) error {
	batteries, err := h.service.ListBatteries(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(batteries)
}

func (h *BatteryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	battery, err := h.service.GetBattery(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(battery)
}

func (h *BatteryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateBattery(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Battery updated successfully"})
}

func (h *BatteryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteBattery(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Battery deleted successfully"})
}

// ListHealthLogs serves the battery-scoped health log listing.
func (h *BatteryHandler) ListHealthLogs(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	logs, err := h.service.ListBatteryHealthLogs(c.Context(), id)
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(logs))
	for i := range logs {
		out = append(out, healthLogView(&logs[i], false))
	}
	return c.JSON(out)
}
