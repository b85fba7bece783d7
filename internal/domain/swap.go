package domain

import (
	"time"
)

// Swap records one exchange of a depleted battery for a charged one.
// Percentage and ah_used values are caller-supplied and stored as-is.
type Swap struct {
	ID                     uint       `json:"id" gorm:"primaryKey"`
	IssuedBatteryID        *uint      `json:"issued_battery_id"`
	ReturnedBatteryID      *uint      `json:"returned_battery_id"`
	UserID                 uint       `json:"user_id"`
	PickupStationID        *uint      `json:"pickup_station_id"`
	DepositStationID       *uint      `json:"deposit_station_id"`
	StartTime              *time.Time `json:"start_time"`
	EndTime                *time.Time `json:"end_time"`
	BatteryPercentageStart *float64   `json:"battery_percentage_start"`
	BatteryPercentageEnd   *float64   `json:"battery_percentage_end"`
	AhUsed                 *float64   `json:"ah_used"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`

	User            *User    `json:"-" gorm:"foreignKey:UserID"`
	IssuedBattery   *Battery `json:"-" gorm:"foreignKey:IssuedBatteryID"`
	ReturnedBattery *Battery `json:"-" gorm:"foreignKey:ReturnedBatteryID"`
	PickupStation   *Station `json:"-" gorm:"foreignKey:PickupStationID"`
	DepositStation  *Station `json:"-" gorm:"foreignKey:DepositStationID"`
}
