package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

type BillingHandler struct {
	service ports.BillingService
	log     *zap.Logger
}

func NewBillingHandler(service ports.BillingService, log *zap.Logger) *BillingHandler {
	return &BillingHandler{
		service: service,
		log:     log,
	}
}

func (h *BillingHandler) Create(c *fiber.Ctx) error {
	var billing domain.MonthlyBilling
	if err := c.BodyParser(&billing); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	created, err := h.service.CreateBilling(c.Context(), &billing)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "MonthlyBilling created successfully",
		"billing_id": created.ID,
	})
}

func (h *BillingHandler) List(c *fiber.Ctx) error {
	billings, err := h.service.ListBillings(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(billingViews(billings))
}

func (h *BillingHandler) ListUnpaid(c *fiber.Ctx) error {
	billings, err := h.service.ListUnpaid(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(billingViews(billings))
}

func (h *BillingHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	billing, err := h.service.GetBilling(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(billingView(billing))
}

// ListByUser serves the user-scoped billing history.
func (h *BillingHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	billings, err := h.service.ListUserBillings(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(billings)
}

func (h *BillingHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	fields, err := decodeFields(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateBilling(c.Context(), id, fields); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "MonthlyBilling updated successfully"})
}

func (h *BillingHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteBilling(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "MonthlyBilling deleted successfully"})
}

func (h *BillingHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req struct {
		PaidAmount  *float64 `json:"paid_amount"`
		PaymentDate *string  `json:"payment_date"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewValidationError("invalid request body")
		}
	}
	if err := h.service.MarkPaid(c.Context(), id, req.PaidAmount, req.PaymentDate); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Billing marked as paid successfully"})
}

func billingViews(billings []domain.MonthlyBilling) []fiber.Map {
	out := make([]fiber.Map, 0, len(billings))
	for i := range billings {
		out = append(out, billingView(&billings[i]))
	}
	return out
}

func billingView(billing *domain.MonthlyBilling) fiber.Map {
	var userName, userEmail interface{}
	if billing.User != nil {
		userName = billing.User.Name
		userEmail = billing.User.Email
	}
	return fiber.Map{
		"id":               billing.ID,
		"user_id":          billing.UserID,
		"billing_month":    billing.BillingMonth,
		"total_ah_used":    billing.TotalAhUsed,
		"ah_included":      billing.AhIncluded,
		"ah_excess":        billing.AhExcess,
		"total_amount_due": billing.TotalAmountDue,
		"paid_amount":      billing.PaidAmount,
		"payment_status":   billing.PaymentStatus,
		"payment_date":     billing.PaymentDate,
		"created_at":       billing.CreatedAt,
		"user_name":        userName,
		"user_email":       userEmail,
	}
}
