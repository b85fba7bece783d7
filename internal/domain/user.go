package domain

import (
	"time"
)

const DefaultUserRole = "user"

type User struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	Name               string     `json:"name"`
	Email              string     `json:"email" gorm:"uniqueIndex"`
	Phone              *string    `json:"phone"`
	Address            *string    `json:"address"`
	LicenseNumber      *string    `json:"license_number"`
	LicenseExpiry      *string    `json:"license_expiry" gorm:"type:date"`
	MotocycleModel     *string    `json:"motocycle_model"`
	MotocycleYear      *string    `json:"motocycle_year"`
	SubscriptionPlanID *uint      `json:"subscription_plan_id"`
	SubscriptionStart  *string    `json:"subscription_start" gorm:"type:date"`
	PasswordHash       string     `json:"-"`
	IsActive           bool       `json:"is_active"`
	Role               string     `json:"role"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	SubscriptionPlan *SubscriptionPlan `json:"-" gorm:"foreignKey:SubscriptionPlanID"`
}

type SubscriptionPlan struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name"`
	MonthlyFee  *float64 `json:"monthly_fee"`
	IncludedAh  *int     `json:"included_ah"`
	ExtraAhRate *float64 `json:"extra_ah_rate"`
}
