package billing

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/adapter/queue"
	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/observability/telemetry"
	"github.com/seu-repo/bss-ve/internal/ports"
)

// Service manages monthly billing rows and the mark-paid workflow.
type Service struct {
	billings ports.BillingRepository
	users    ports.UserRepository
	mq       queue.MessageQueue
	log      *zap.Logger
}

func NewService(
	billings ports.BillingRepository,
	users ports.UserRepository,
	mq queue.MessageQueue,
	log *zap.Logger,
) ports.BillingService {
	return &Service{
		billings: billings,
		users:    users,
		mq:       mq,
		log:      log,
	}
}

func (s *Service) CreateBilling(ctx context.Context, billing *domain.MonthlyBilling) (*domain.MonthlyBilling, error) {
	if billing.UserID == 0 || billing.BillingMonth == "" {
		return nil, domain.NewValidationError("Missing required fields: user_id, billing_month")
	}
	if _, err := s.users.FindByID(ctx, billing.UserID); err != nil {
		return nil, err
	}
	if err := s.billings.Create(ctx, billing); err != nil {
		return nil, err
	}
	return billing, nil
}

func (s *Service) ListBillings(ctx context.Context) ([]domain.MonthlyBilling, error) {
	return s.billings.FindAll(ctx)
}

func (s *Service) GetBilling(ctx context.Context, id uint) (*domain.MonthlyBilling, error) {
	return s.billings.FindByID(ctx, id)
}

func (s *Service) ListUserBillings(ctx context.Context, userID uint) ([]domain.MonthlyBilling, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.billings.FindByUserID(ctx, userID)
}

func (s *Service) ListUnpaid(ctx context.Context) ([]domain.MonthlyBilling, error) {
	return s.billings.FindUnpaid(ctx)
}

func (s *Service) UpdateBilling(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.billings.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("user_id") {
		v, err := fields.Uint("user_id")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field user_id cannot be null")
		}
		if _, err := s.users.FindByID(ctx, *v); err != nil {
			return err
		}
		cols["user_id"] = *v
	}
	if fields.Has("billing_month") {
		v, err := fields.String("billing_month")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field billing_month cannot be null")
		}
		cols["billing_month"] = *v
	}
	for _, key := range []string{"total_ah_used", "ah_included", "ah_excess", "total_amount_due", "paid_amount"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.Float(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	for _, key := range []string{"payment_status", "payment_date"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.String(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.billings.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteBilling(ctx context.Context, id uint) error {
	if _, err := s.billings.FindByID(ctx, id); err != nil {
		return err
	}
	return s.billings.Delete(ctx, id)
}

// MarkPaid sets payment_status to paid. When no paid_amount is supplied the
// full amount due is recorded.
func (s *Service) MarkPaid(ctx context.Context, id uint, paidAmount *float64, paymentDate *string) error {
	billing, err := s.billings.FindByID(ctx, id)
	if err != nil {
		return err
	}

	amount := paidAmount
	if amount == nil {
		amount = billing.TotalAmountDue
	}

	cols := map[string]interface{}{
		"payment_status": domain.PaymentStatusPaid,
		"paid_amount":    amount,
		"payment_date":   paymentDate,
	}
	if err := s.billings.UpdateColumns(ctx, id, cols); err != nil {
		return err
	}
	telemetry.BillingsMarkedPaid.Inc()

	event := map[string]interface{}{
		"billing_id":    billing.ID,
		"user_id":       billing.UserID,
		"billing_month": billing.BillingMonth,
		"paid_amount":   amount,
	}
	if data, err := json.Marshal(event); err == nil {
		if err := s.mq.Publish(queue.SubjectBillingPaid, data); err != nil {
			s.log.Error("Failed to publish billing event", zap.Uint("billing_id", billing.ID), zap.Error(err))
		}
	}
	return nil
}
