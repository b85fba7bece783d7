package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-repo/bss-ve/internal/domain"
	"github.com/seu-repo/bss-ve/internal/ports"
)

const cardCacheTTL = 5 * time.Minute

// Service manages subscription plans, users and RFID cards. Card lookups by
// code are cached because they sit on the swap hot path at the station kiosk.
type Service struct {
	plans ports.SubscriptionPlanRepository
	users ports.UserRepository
	cards ports.RFIDCardRepository
	cache ports.Cache
	log   *zap.Logger
}

func NewService(
	plans ports.SubscriptionPlanRepository,
	users ports.UserRepository,
	cards ports.RFIDCardRepository,
	cache ports.Cache,
	log *zap.Logger,
) ports.RegistryService {
	return &Service{
		plans: plans,
		users: users,
		cards: cards,
		cache: cache,
		log:   log,
	}
}

// Subscription plans

func (s *Service) CreatePlan(ctx context.Context, plan *domain.SubscriptionPlan) (*domain.SubscriptionPlan, error) {
	if plan.Name == "" {
		return nil, domain.NewValidationError("Missing required field: name")
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *Service) ListPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	return s.plans.FindAll(ctx)
}

func (s *Service) GetPlan(ctx context.Context, id uint) (*domain.SubscriptionPlan, error) {
	return s.plans.FindByID(ctx, id)
}

func (s *Service) UpdatePlan(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.plans.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	if fields.Has("name") {
		v, err := fields.String("name")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field name cannot be null")
		}
		cols["name"] = *v
	}
	if fields.Has("monthly_fee") {
		v, err := fields.Float("monthly_fee")
		if err != nil {
			return err
		}
		cols["monthly_fee"] = v
	}
	if fields.Has("included_ah") {
		v, err := fields.Int("included_ah")
		if err != nil {
			return err
		}
		cols["included_ah"] = v
	}
	if fields.Has("extra_ah_rate") {
		v, err := fields.Float("extra_ah_rate")
		if err != nil {
			return err
		}
		cols["extra_ah_rate"] = v
	}
	if len(cols) == 0 {
		return nil
	}
	return s.plans.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeletePlan(ctx context.Context, id uint) error {
	if _, err := s.plans.FindByID(ctx, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

// Users

func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Name == "" || user.Email == "" || user.PasswordHash == "" {
		return nil, domain.NewValidationError("Missing required fields: name, email, password_hash")
	}
	if user.Role == "" {
		user.Role = domain.DefaultUserRole
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *Service) GetUser(ctx context.Context, id uint) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *Service) UpdateUser(ctx context.Context, id uint, fields domain.Fields) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	cols := map[string]interface{}{}
	for _, key := range []string{"name", "email", "role"} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.String(key)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field %s cannot be null", key)
		}
		cols[key] = *v
	}
	for _, key := range []string{
		"phone", "address", "license_number", "license_expiry",
		"motocycle_model", "motocycle_year", "subscription_start",
	} {
		if !fields.Has(key) {
			continue
		}
		v, err := fields.String(key)
		if err != nil {
			return err
		}
		cols[key] = v
	}
	if fields.Has("subscription_plan_id") {
		v, err := fields.Uint("subscription_plan_id")
		if err != nil {
			return err
		}
		if v != nil {
			if _, err := s.plans.FindByID(ctx, *v); err != nil {
				return err
			}
		}
		cols["subscription_plan_id"] = v
	}
	if fields.Has("is_active") {
		v, err := fields.Bool("is_active")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field is_active cannot be null")
		}
		cols["is_active"] = *v
	}
	// A new hash replaces the stored one only when non-empty.
	if fields.Has("password_hash") && !fields.IsNull("password_hash") {
		v, err := fields.String("password_hash")
		if err != nil {
			return err
		}
		if *v != "" {
			cols["password_hash"] = *v
		}
	}
	if fields.Has("password") && !fields.IsNull("password") {
		v, err := fields.String("password")
		if err != nil {
			return err
		}
		if *v != "" {
			hash, err := HashPassword(*v)
			if err != nil {
				return err
			}
			cols["password_hash"] = hash
		}
	}
	if len(cols) == 0 {
		return nil
	}
	return s.users.UpdateColumns(ctx, id, cols)
}

func (s *Service) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// RFID cards

func (s *Service) CreateCard(ctx context.Context, card *domain.RFIDCard) (*domain.RFIDCard, error) {
	if card.UserID == 0 || card.RFIDCode == "" {
		return nil, domain.NewValidationError("Missing required fields: user_id, rfid_code")
	}
	if _, err := s.users.FindByID(ctx, card.UserID); err != nil {
		return nil, err
	}
	if card.Status == "" {
		card.Status = domain.DefaultRFIDCardStatus
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *Service) ListCards(ctx context.Context) ([]domain.RFIDCard, error) {
	return s.cards.FindAll(ctx)
}

func (s *Service) GetCard(ctx context.Context, id uint) (*domain.RFIDCard, error) {
	return s.cards.FindByID(ctx, id)
}

func (s *Service) GetCardByCode(ctx context.Context, code string) (*domain.RFIDCard, error) {
	if cached, err := s.cache.Get(ctx, cardCacheKey(code)); err == nil && cached != "" {
		var card domain.RFIDCard
		if err := json.Unmarshal([]byte(cached), &card); err == nil {
			return &card, nil
		}
	}

	card, err := s.cards.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(card); err == nil {
		if err := s.cache.Set(ctx, cardCacheKey(code), data, cardCacheTTL); err != nil {
			s.log.Warn("Failed to cache RFID card", zap.String("rfid_code", code), zap.Error(err))
		}
	}
	return card, nil
}

func (s *Service) UpdateCard(ctx context.Context, id uint, fields domain.Fields) error {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
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
	if fields.Has("rfid_code") {
		v, err := fields.String("rfid_code")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field rfid_code cannot be null")
		}
		cols["rfid_code"] = *v
	}
	if fields.Has("assigned_battery_id") {
		v, err := fields.Uint("assigned_battery_id")
		if err != nil {
			return err
		}
		cols["assigned_battery_id"] = v
	}
	if fields.Has("status") {
		v, err := fields.String("status")
		if err != nil {
			return err
		}
		if v == nil {
			return domain.NewValidationError("field status cannot be null")
		}
		cols["status"] = *v
	}
	if len(cols) == 0 {
		return nil
	}
	if err := s.cards.UpdateColumns(ctx, id, cols); err != nil {
		return err
	}
	s.invalidateCard(ctx, card.RFIDCode)
	return nil
}

func (s *Service) DeleteCard(ctx context.Context, id uint) error {
	card, err := s.cards.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.cards.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCard(ctx, card.RFIDCode)
	return nil
}

func (s *Service) invalidateCard(ctx context.Context, code string) {
	if err := s.cache.Delete(ctx, cardCacheKey(code)); err != nil {
		s.log.Warn("Failed to invalidate RFID card cache", zap.String("rfid_code", code), zap.Error(err))
	}
}

func cardCacheKey(code string) string {
	return fmt.Sprintf("rfid:code:%s", code)
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
