package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SwapHandler struct {
	service ports.SwapService
	log     *zap.Logger
}

func NewSwapHandler(service ports.SwapService, log *zap.Logger) *SwapHandler {
	return &SwapHandler{
		service: service,
		log:     log,
	}
}

func (h *SwapHandler) Create(c *fiber.Ctx) error {
	var swap domain.Swap
	if err := c.BodyParser(&swap); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateSwap(c.Context(), &swap)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Swap created successfully",
		"swap_id": created.ID,
	})
}

func (h *SwapHandler) List(c *fiber.Ctx) error {
	swaps, err := h.service.ListSwaps(c.Context())
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(swaps))
	for i := range swaps {
		out = append(out, swapView(&swaps[i]))
	}
	return c.JSON(out)
}

func (h *SwapHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	swap, err := h.service.GetSwap(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(swapView(swap))
}

// ListByUser serves the user-scoped swap history.
func (h *SwapHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	swaps, err := h.service.ListUserSwaps(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(swaps)
}

func (h *SwapHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateSwap(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Swap updated successfully"})
}

func (h *SwapHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteSwap(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Swap deleted successfully"})
}

func swapView(swap *domain.Swap) fiber.Map {
	var userName, userEmail interface{}
	if swap.User != nil {
		userName = swap.User.Name
		userEmail = swap.User.Email
	}
	return fiber.Map{
		"id":                       swap.ID,
		"issued_battery_id":        swap.IssuedBatteryID,
		"returned_battery_id":      swap.ReturnedBatteryID,
		"user_id":                  swap.UserID,
		"pickup_station_id":        swap.PickupStationID,
		"deposit_station_id":       swap.DepositStationID,
		"start_time":               swap.StartTime,
		"end_time":                 swap.EndTime,
		"battery_percentage_start": swap.BatteryPercentageStart,
		"battery_percentage_end":   swap.BatteryPercentageEnd,
		"ah_used":                  swap.AhUsed,
		"created_at":               swap.CreatedAt,
		"updated_at":               swap.UpdatedAt,
		"user_name":                userName,
		"user_email":               userEmail,
	}
}
