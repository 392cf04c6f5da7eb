package scheduler

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAllocate_Invariants property-tests the allocation invariants over
// random schedules: no negative hours, no day above its spare capacity, and
// never more than requested in total.
func TestAllocate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	budget := DefaultBudget()

	for trial := 0; trial < 300; trial++ {
		days := rng.Intn(30) + 1
		planned := make([]float64, days)
		for i := range planned {
			// Quarter-hour granularity, occasionally overloaded.
			planned[i] = float64(rng.Intn(90)) / 4
		}
		required := rng.Intn(400) - 20

		in := scheduleWithPlanned(planned...)
		out := Allocate(in, required, budget)

		assert.Len(t, out, len(in), "trial %d", trial)

		total := 0
		for i, d := range out {
			assert.Equal(t, in[i].Date, d.Date, "trial %d day %d: order must be preserved", trial, i)
			assert.GreaterOrEqual(t, d.HoursToWork, 0, "trial %d day %d", trial, i)

			spare := math.Max(0, budget.AvailableHours(d.HoursPlanned))
			assert.LessOrEqual(t, float64(d.HoursToWork), spare,
				"trial %d day %d: %d hours exceeds spare %.2f", trial, i, d.HoursToWork, spare)
			total += d.HoursToWork
		}

		if required > 0 {
			assert.LessOrEqual(t, total, required, "trial %d", trial)
		} else {
			assert.Zero(t, total, "trial %d", trial)
		}
	}
}

// TestAllocate_Invariants_UniformDaysMeetRequirement checks that with equal
// free days and enough total capacity the whole requirement is placed.
func TestAllocate_Invariants_UniformDaysMeetRequirement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	budget := DefaultBudget()

	for trial := 0; trial < 200; trial++ {
		days := rng.Intn(20) + 1
		busy := float64(rng.Intn(12))
		planned := make([]float64, days)
		for i := range planned {
			planned[i] = busy
		}
		capacity := int(budget.AwakeHours()-busy) * days
		required := rng.Intn(capacity) + 1

		out := Allocate(scheduleWithPlanned(planned...), required, budget)

		assert.Equal(t, required, out.TotalWork(),
			"trial %d: %d days, %.0f busy, %d required", trial, days, busy, required)
	}
}
