package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type SubscriptionPlanHandler struct {
	service ports.RegistryService
	log     *zap.Logger
}

func NewSubscriptionPlanHandler(service ports.RegistryService, log *zap.Logger) *SubscriptionPlanHandler {
	return &SubscriptionPlanHandler{
		service: service,
		log:     log,
	}
}

func (h *SubscriptionPlanHandler) Create(c *fiber.Ctx) error {
	var plan domain.SubscriptionPlan
	if err := c.BodyParser(&plan); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreatePlan(c.Context(), &plan)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "SubscriptionPlan created successfully",
		"plan_id": created.ID,
	})
}

func (h *SubscriptionPlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.service.ListPlans(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(plans)
}

func (h *SubscriptionPlanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	plan, err := h.service.GetPlan(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(plan)
}

func (h *SubscriptionPlanHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdatePlan(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "SubscriptionPlan updated successfully"})
}

func (h *SubscriptionPlanHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeletePlan(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "SubscriptionPlan deleted successfully"})
}
