package simulation

import (
	"fmt"

	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
)

// Mix blends the states of two ions by relative fraction. Every core field is
// a linear interpolation weighted fraction1 toward ion1, with one domain
// exception: for the unordered pair {H+, Na+} the structural role is not
// interpolated from the semantic outputs but recomputed from the swelling
// correction, since the volume change between those two forms is non-additive.
func Mix(ion1, ion2 ion.Ion, fraction1 float64, props model.ResinProps) (model.ComputationalState, error) {
	if fraction1 < 0 || fraction1 > 1 {
		return model.ComputationalState{}, fmt.Errorf("fraction must be in [0,1], got %f", fraction1)
	}

	state1, err := Apply(ion1, props)
	if err != nil {
		return model.ComputationalState{}, err
	}
	state2, err := Apply(ion2, props)
	if err != nil {
		return model.ComputationalState{}, err
	}

	lerp := func(a, b float64) float64 {
		return a*fraction1 + b*(1-fraction1)
	}

	mixed := model.DefaultState()
	mixed.Conductivity = lerp(state1.Conductivity, state2.Conductivity)
	mixed.CatalyticActivity = lerp(state1.CatalyticActivity, state2.CatalyticActivity)
	mixed.ThermalPower = lerp(state1.ThermalPower, state2.ThermalPower)
	mixed.TribologicalPerformance = lerp(state1.TribologicalPerformance, state2.TribologicalPerformance)
	mixed.OpticalQuality = lerp(state1.OpticalQuality, state2.OpticalQuality)

	switch {
	case ion1 == ion2:
		mixed.StructuralRole = state1.StructuralRole
	case isHydrogenSodiumPair(ion1, ion2):
		volumeChange := props.Float("volume_change_H_Na", 0.085)
		baseRole := props.Float("base_structural_role", 0.6)
		roleH := baseRole * (1 + volumeChange/2)
		roleNa := baseRole * (1 - volumeChange/2)
		// fraction1 always weights the hydrogen role, whichever operand
		// position H+ occupies.
		mixed.StructuralRole = lerp(roleH, roleNa)
	default:
		mixed.StructuralRole = lerp(state1.StructuralRole, state2.StructuralRole)
	}

	return mixed, nil
}

func isHydrogenSodiumPair(a, b ion.Ion) bool {
	return (a == ion.HPlus && b == ion.NaPlus) || (a == ion.NaPlus && b == ion.HPlus)
}
