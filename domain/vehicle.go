package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMileageBand = errors.New("unknown mileage band")
	ErrUnknownCondition   = errors.New("unknown condition")
	ErrYearOutOfRange     = errors.New("year out of range")
)

// Oldest and newest model years offered relative to the current year.
const (
	MaxVehicleAge = 25
	MaxYearsAhead = 1
)

type MileageBand string

const (
	MileageUnder15K MileageBand = "0-15000"
	Mileage15To30K  MileageBand = "15000-30000"
	Mileage30To50K  MileageBand = "30000-50000"
	Mileage50To75K  MileageBand = "50000-75000"
	Mileage75To100K MileageBand = "75000-100000"
	MileageOver100K MileageBand = "100000+"
)

// MileageBands lists every band from lowest to highest mileage.
var MileageBands = []MileageBand{
	MileageUnder15K,
	Mileage15To30K,
	Mileage30To50K,
	Mileage50To75K,
	Mileage75To100K,
	MileageOver100K,
}

func (b MileageBand) Valid() bool {
	for _, known := range MileageBands {
		if b == known {
			return true
		}
	}
	return false
}

type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionRough     Condition = "rough"
)

var Conditions = []Condition{
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionRough,
}

func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// VehicleDescription is what the visitor submits on the vehicle form.
type VehicleDescription struct {
	Year      int         `json:"year"`
	Make      string      `json:"make"`
	Model     string      `json:"model"`
	Mileage   MileageBand `json:"mileage"`
	Condition Condition   `json:"condition"`
}

// Validate checks the enumerated fields and the year window. Scoring never
// depends on it: unknown keys simply contribute nothing.
func (v VehicleDescription) Validate(currentYear int) error {
	if !v.Mileage.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMileageBand, v.Mileage)
	}
	if !v.Condition.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, v.Condition)
	}
	if v.Year < currentYear-MaxVehicleAge || v.Year > currentYear+MaxYearsAhead {
		return fmt.Errorf("%w: %d", ErrYearOutOfRange, v.Year)
	}
	return nil
}
