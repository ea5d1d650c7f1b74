package simulation

import "github.com/kleafrog-source/research-resin/internal/model"

// Per-cycle retention factors by resin quality grade. English aliases map to
// the same factors as the reference grade names.
var gradeRetention = map[string]float64{
	"высший":  0.995,
	"premium": 0.995,
	"первый":  0.985,
	"first":   0.985,
	"базовый": 0.975,
	"basic":   0.975,
}

const defaultRetention = 0.98

// DegradationRetention returns the per-cycle retention factor for a grade
// name, falling back to the default for unknown grades.
func DegradationRetention(grade string) float64 {
	if r, ok := gradeRetention[grade]; ok {
		return r
	}
	return defaultRetention
}

// Degrade simulates osmotic degradation over the given number of
// use/regeneration cycles. Conductivity, catalytic activity, structural role,
// tribological performance and optical quality each lose (1 - retention) per
// cycle; thermal power is invariant, and the extended fields pass through
// untouched. The multiplication is applied cycle by cycle so the result is
// exactly the iterated single-cycle product.
func Degrade(initial model.ComputationalState, cycles int, grade string) model.ComputationalState {
	retention := DegradationRetention(grade)

	state := initial
	for c := 0; c < cycles; c++ {
		state.Conductivity *= retention
		state.CatalyticActivity *= retention
		state.StructuralRole *= retention
		state.TribologicalPerformance *= retention
		state.OpticalQuality *= retention
	}
	return state
}
