// Package ion defines the closed catalog of ion species the resin model
// supports, together with their physical constants.
package ion

import "fmt"

// Ion identifies one supported ion species. Mixed is a sentinel marking a
// blended state and has no semantic function or physical descriptor.
type Ion string

const (
	HPlus   Ion = "H+"
	NaPlus  Ion = "Na+"
	KPlus   Ion = "K+"
	Ca2Plus Ion = "Ca2+"
	Mg2Plus Ion = "Mg2+"
	Fe3Plus Ion = "Fe3+"
	Al3Plus Ion = "Al3+"
	Cu2Plus Ion = "Cu2+"
	Zn2Plus Ion = "Zn2+"
	Mixed   Ion = "mixed"
)

var all = []Ion{HPlus, NaPlus, KPlus, Ca2Plus, Mg2Plus, Fe3Plus, Al3Plus, Cu2Plus, Zn2Plus}

// All returns the concrete ion species in catalog order, excluding the Mixed
// sentinel. Callers must not mutate the returned slice.
func All() []Ion {
	return all
}

// FromString resolves an ion by its species symbol.
func FromString(s string) (Ion, error) {
	switch Ion(s) {
	case HPlus, NaPlus, KPlus, Ca2Plus, Mg2Plus, Fe3Plus, Al3Plus, Cu2Plus, Zn2Plus, Mixed:
		return Ion(s), nil
	default:
		return "", fmt.Errorf("unknown ion species: %q", s)
	}
}

// Concrete reports whether the ion is a real species rather than the Mixed
// sentinel.
func (i Ion) Concrete() bool {
	return i != Mixed && i != ""
}

// Ion mobility in relative units.
var mobility = map[Ion]float64{
	HPlus:   36.23e-8,
	NaPlus:  5.19e-8,
	KPlus:   7.62e-8,
	Ca2Plus: 6.17e-8,
	Mg2Plus: 5.46e-8,
	Fe3Plus: 4.50e-8,
	Al3Plus: 4.20e-8,
	Cu2Plus: 5.60e-8,
	Zn2Plus: 5.50e-8,
}

// Mobility returns the ion's relative mobility constant.
func (i Ion) Mobility() (float64, bool) {
	m, ok := mobility[i]
	return m, ok
}

// Descriptor is the fixed 5-tuple of physical scalars used as regression
// features: charge, ionic radius (nm), hydration energy (kJ/mol), Pauling
// electronegativity, and hydration number.
type Descriptor struct {
	Charge            float64
	Radius            float64
	HydrationEnergy   float64
	Electronegativity float64
	HydrationNumber   float64
}

var descriptors = map[Ion]Descriptor{
	HPlus:   {Charge: 1, Radius: 0.28, HydrationEnergy: 1090, Electronegativity: 2.2, HydrationNumber: 4},
	NaPlus:  {Charge: 1, Radius: 0.36, HydrationEnergy: 405, Electronegativity: 0.93, HydrationNumber: 6},
	KPlus:   {Charge: 1, Radius: 0.48, HydrationEnergy: 295, Electronegativity: 0.82, HydrationNumber: 6},
	Ca2Plus: {Charge: 2, Radius: 0.46, HydrationEnergy: 1577, Electronegativity: 1.0, HydrationNumber: 6},
	Mg2Plus: {Charge: 2, Radius: 0.36, HydrationEnergy: 1830, Electronegativity: 1.31, HydrationNumber: 6},
	Fe3Plus: {Charge: 3, Radius: 0.39, HydrationEnergy: 4294, Electronegativity: 1.83, HydrationNumber: 6},
	Al3Plus: {Charge: 3, Radius: 0.34, HydrationEnergy: 4530, Electronegativity: 1.61, HydrationNumber: 6},
	Cu2Plus: {Charge: 2, Radius: 0.44, HydrationEnergy: 2100, Electronegativity: 1.9, HydrationNumber: 6},
	Zn2Plus: {Charge: 2, Radius: 0.44, HydrationEnergy: 2020, Electronegativity: 1.65, HydrationNumber: 6},
}

// PhysicalDescriptor returns the ion's regression feature descriptor.
func (i Ion) PhysicalDescriptor() (Descriptor, bool) {
	d, ok := descriptors[i]
	return d, ok
}

// Features flattens the descriptor into the canonical feature vector order.
func (d Descriptor) Features() []float64 {
	return []float64{d.Charge, d.Radius, d.HydrationEnergy, d.Electronegativity, d.HydrationNumber}
}

// FeatureNames lists the descriptor scalars in Features order.
func FeatureNames() []string {
	return []string{"charge", "radius", "hydration_energy", "electronegativity", "hydration_number"}
}
