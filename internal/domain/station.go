package domain

import (
	"time"
)

type Station struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Location  *string   `json:"location"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SlotStatus string

const (
	SlotStatusEmpty    SlotStatus = "empty"
	SlotStatusOccupied SlotStatus = "occupied"
	SlotStatusFaulty   SlotStatus = "faulty"
)

// Slot is a physical bay at a station that may hold one battery.
type Slot struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	StationID   uint       `json:"station_id"`
	SlotNumber  int        `json:"slot_number"`
	BatteryID   *uint      `json:"battery_id"`
	Status      SlotStatus `json:"status"`
	IsCharging  bool       `json:"is_charging"`
	LastUpdated time.Time  `json:"last_updated" gorm:"autoCreateTime"`

	Station *Station `json:"-" gorm:"foreignKey:StationID"`
	Battery *Battery `json:"-" gorm:"foreignKey:BatteryID"`
}
