package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type HealthLogHandler struct {
	service ports.FleetService
	log     *zap.Logger
}

func NewHealthLogHandler(service ports.FleetService, log *zap.Logger) *HealthLogHandler {
	return &HealthLogHandler{
		service: service,
		log:     log,
	}
}

func (h *HealthLogHandler) Create(c *fiber.Ctx) error {
	var hlog domain.BatteryHealthLog
	if err := c.BodyParser(&hlog); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateHealthLog(c.Context(), &hlog)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "BatteryHealthLog created successfully",
		"log_id":  created.ID,
	})
}

func (h *HealthLogHandler) List(c *fiber.Ctx) error {
	logs, err := h.service.ListHealthLogs(c.Context())
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(logs))
	for i := range logs {
		out = append(out, healthLogView(&logs[i], true))
	}
	return c.JSON(out)
}

func (h *HealthLogHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	hlog, err := h.service.GetHealthLog(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(healthLogView(hlog, true))
}

func (h *HealthLogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateHealthLog(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "BatteryHealthLog updated successfully"})
}

func (h *HealthLogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteHealthLog(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "BatteryHealthLog deleted successfully"})
}

func healthLogView(hlog *domain.BatteryHealthLog, withSerial bool) fiber.Map {
	view := fiber.Map{
		"id":                hlog.ID,
		"battery_id":        hlog.BatteryID,
		"soh_percent":       hlog.SohPercent,
		"pack_voltage":      hlog.PackVoltage,
		"cell_voltage_min":  hlog.CellVoltageMin,
		"cell_voltage_max":  hlog.CellVoltageMax,
		"cell_voltage_diff": hlog.CellVoltageDiff,
		"max_temp":          hlog.MaxTemp,
		"ambient_temp":      hlog.AmbientTemp,
		"humidity":          hlog.Humidity,
		"internal_resist":   hlog.InternalResist,
		"cycle_count":       hlog.CycleCount,
		"error_code":        hlog.ErrorCode,
		"created_at":        hlog.CreatedAt,
	}
	if withSerial {
		var serial interface{}
		if hlog.Battery != nil {
			serial = hlog.Battery.SerialNumber
		}
		view["battery_serial"] = serial
	}
	return view
}
