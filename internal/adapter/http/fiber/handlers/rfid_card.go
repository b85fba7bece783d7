package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type RFIDCardHandler struct {
	service ports.RegistryService
	log     *zap.Logger
}

func NewRFIDCardHandler(service ports.RegistryService, log *zap.Logger) *RFIDCardHandler {
	return &RFIDCardHandler{
		service: service,
		log:     log,
	}
}

func (h *RFIDCardHandler) Create(c *fiber.Ctx) error {
	var card domain.RFIDCard
	if err := c.BodyParser(&card); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateCard(c.Context(), &card)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "RFIDCard created successfully",
		"card_id": created.ID,
	})
}

func (h *RFIDCardHandler) List(c *fiber.Ctx) error {
	cards, err := h.service.ListCards(c.Context())
	if err != nil {
		return err
	}
	out := make([]fiber.Map, 0, len(cards))
	for i := range cards {
		out = append(out, cardView(&cards[i]))
	}
	return c.JSON(out)
}

func (h *RFIDCardHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	card, err := h.service.GetCard(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(cardView(card))
}

func (h *RFIDCardHandler) GetByCode(c *fiber.Ctx) error {
	card, err := h.service.GetCardByCode(c.Context(), c.Params("code"))
	if err != nil {
		return err
	}
	return c.JSON(cardView(card))
}

func (h *RFIDCardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateCard(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "RFIDCard updated successfully"})
}

func (h *RFIDCardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteCard(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "RFIDCard deleted successfully"})
}

func cardView(card *domain.RFIDCard) fiber.Map {
	var userEmail interface{}
	if card.User != nil {
		userEmail = card.User.Email
	}
	return fiber.Map{
		"id":                  card.ID,
		"user_id":             card.UserID,
		"rfid_code":           card.RFIDCode,
		"assigned_battery_id": card.AssignedBatteryID,
		"issued_at":           card.IssuedAt,
		"status":              card.Status,
		"user_email":          userEmail,
	}
}
