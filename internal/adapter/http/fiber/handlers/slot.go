package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SlotHandler struct {
	service ports.FleetService
	log     *zap.Logger
}

func NewSlotHandler(service ports.FleetService, log *zap.Logger) *SlotHandler {
	return &SlotHandler{
		service: service,
		log:     log,
	}
}

func (h *SlotHandler) Create(c *fiber.Ctx) error {
	var slot domain.Slot
	if err := c.BodyParser(&slot); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateSlot(c.Context(), &slot)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Slot created successfully",
		"slot_id": created.ID,
	})
}

func (h *SlotHandler) List(c *fiber.Ctx) error {
	slots, err := h.service.ListSlots(c.Context())
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(slots))
	for i := range slots {
		out = append(out, slotView(&slots[i]))
	}
	return c.JSON(out)
}

func (h *SlotHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	slot, err := h.service.GetSlot(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(slotView(slot))
}

func (h *SlotHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateSlot(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Slot updated successfully"})
}

func (h *SlotHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteSlot(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Slot deleted successfully"})
}

func (h *SlotHandler) AssignBattery(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		BatteryID uint `json:"battery_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.BatteryID == 0 {
		return domain.NewValidationError("Missing required field: battery_id")
	}
	if err := h.service.AssignBattery(c.Context(), id, req.BatteryID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Battery assigned to slot successfully"})
}

func (h *SlotHandler) RemoveBattery(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.RemoveBattery(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Battery removed from slot successfully"})
}

func slotView(slot *domain.Slot) fiber.Map {
	var stationName, batterySerial interface{}
	if slot.Station != nil {
		stationName = slot.Station.Name
	}
	if slot.Battery != nil {
		batterySerial = slot.Battery.SerialNumber
	}
	return fiber.Map{
		"id":             slot.ID,
		"station_id":     slot.StationID,
		"slot_number":    slot.SlotNumber,
		"battery_id":     slot.BatteryID,
		"status":         slot.Status,
		"is_charging":    slot.IsCharging,
		"last_updated":   slot.LastUpdated,
		"station_name":   stationName,
		"battery_serial": batterySerial,
	}
}
