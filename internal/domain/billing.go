package domain

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPending PaymentStatus = "pending"
)

type MonthlyBilling struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id"`
	BillingMonth   string         `json:"billing_month" gorm:"size:10"`
	TotalAhUsed    *float64       `json:"total_ah_used"`
	AhIncluded     *float64       `json:"ah_included"`
	AhExcess       *float64       `json:"ah_excess"`
	TotalAmountDue *float64       `json:"total_amount_due"`
	PaidAmount     *float64       `json:"paid_amount"`
	PaymentStatus  *PaymentStatus `json:"payment_status"`
	PaymentDate    *string        `json:"payment_date" gorm:"type:date"`
	CreatedAt      time.Time      `json:"created_at"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
}

func (MonthlyBilling) TableName() string { return "monthly_billing" }
