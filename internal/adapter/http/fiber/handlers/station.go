package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type StationHandler struct {
	service ports.FleetService
	log     *zap.Logger
}

func NewStationHandler(service ports.FleetService, log *zap.Logger) *StationHandler {
	return &StationHandler{
		service: service,
		log:     log,
	}
}

func (h *StationHandler) Create(c *fiber.Ctx) error {
	var station domain.Station
	if err := c.BodyParser(&station); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateStation(c.Context(), &station)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Station created successfully",
		"station_id": created.ID,
	})
}

func (h *StationHandler) List(c *fiber.Ctx) error {
	stations, err := h.service.ListStations(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stations)
}

func (h *StationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	station, err := h.service.GetStation(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(station)
}

func (h *StationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateStation(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Station updated successfully"})
}

func (h *StationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteStation(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Station deleted successfully"})
}

func (h *StationHandler) ListBatteries(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	batteries, err := h.service.ListStationBatteries(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(batteries)
}

func (h *StationHandler) ListSlots(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	slots, err := h.service.ListStationSlots(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(slots)
}
