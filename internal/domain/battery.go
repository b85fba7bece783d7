package domain

import (
	"time"
)

type BatteryStatus string

const (
	BatteryStatusAvailable BatteryStatus = "available"
	BatteryStatusInUse     BatteryStatus = "in_use"
	BatteryStatusCharging  BatteryStatus = "charging"
)

type Battery struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	StationID       *uint         `json:"station_id"`
	Status          BatteryStatus `json:"status"`
	SerialNumber    string        `json:"serial_number" gorm:"uniqueIndex"`
	BatteryType     *string       `json:"battery_type"`
	BatteryCapacity *float64      `json:"battery_capacity"`
	ManufactureDate *string       `json:"manufacture_date" gorm:"size:10"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Station *Station `json:"-" gorm:"foreignKey:StationID"`
}

// BatteryHealthLog is a single BMS telemetry sample for a battery.
type BatteryHealthLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	BatteryID      uint      `json:"battery_id"`
	SohPercent      *float64  `json:"soh_percent"`
	PackVoltage     *float64  `json:"pack_voltage"`
	CellVoltageMin  *float64  `json:"cell_voltage_min"`
	CellVoltageMax  *float64  `json:"cell_voltage_max"`
	CellVoltageDiff *float64  `json:"cell_voltage_diff"`
	MaxTemp         *float64  `json:"max_temp"`
	AmbientTemp     *float64  `json:"ambient_temp"`
	Humidity        *float64  `json:"humidity"`
	InternalResist  *float64  `json:"internal_resist"`
	CycleCount      *int      `json:"cycle_count"`
	ErrorCode       *string   `json:"error_code" gorm:"size:50"`
	CreatedAt       time.Time `json:"created_at"`

	Battery *Battery `json:"-" gorm:"foreignKey:BatteryID"`
}
