package model

import "time"

// StateSliceModel represents the state_slices table: one row per state key
// holding the JSON document of that slice.
type StateSliceModel struct {
	Key       string    `gorm:"column:state_key;type:varchar(128);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the StateSliceModel.
func (StateSliceModel) TableName() string {
	return "state_slices"
}
