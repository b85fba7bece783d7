package domain

import (
	"time"
)

const DefaultRFIDCardStatus = "active"

type RFIDCard struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id"`
	RFIDCode          string    `json:"rfid_code" gorm:"uniqueIndex;column:rfid_code"`
	AssignedBatteryID *uint     `json:"assigned_battery_id"`
	IssuedAt          time.Time `json:"issued_at" gorm:"autoCreateTime"`
	Status            string    `json:"status"`

	User    *User    `json:"-" gorm:"foreignKey:UserID"`
	Battery *Battery `json:"-" gorm:"foreignKey:AssignedBatteryID"`
}
