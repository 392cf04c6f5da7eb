package scheduler

import (
	"fmt"

	"github.com/alexanderramin/workcal/internal/domain"
)

// Budget describes how many hours a day holds and how many of them are
// reserved for sleep.
type Budget struct {
	HoursPerDay   float64
	SleepingHours float64
}

// DefaultBudget returns the 24h day with 8h of sleep.
func DefaultBudget() Budget {
	return Budget{
		HoursPerDay:   domain.DefaultHoursPerDay,
		SleepingHours: domain.DefaultSleepingHours,
	}
}

// AwakeHours is the part of the day not reserved for sleep.
func (b Budget) AwakeHours() float64 {
	return b.HoursPerDay - b.SleepingHours
}

// AvailableHours returns the hours left for work after sleep and existing
// plans. The result is negative for an overloaded day.
func (b Budget) AvailableHours(hoursPlanned float64) float64 {
	return b.HoursPerDay - b.SleepingHours - hoursPlanned
}

// Validate rejects budgets that leave no waking time.
func (b Budget) Validate() error {
	if b.HoursPerDay <= 0 {
		return fmt.Errorf("hours per day must be positive, got %g", b.HoursPerDay)
	}
	if b.SleepingHours < 0 {
		return fmt.Errorf("sleeping hours must not be negative, got %g", b.SleepingHours)
	}
	if b.SleepingHours >= b.HoursPerDay {
		return fmt.Errorf("sleeping hours (%g) must be less than hours per day (%g)", b.SleepingHours, b.HoursPerDay)
	}
	return nil
}
