// Package semantics maps each concrete ion species to its pure semantic
// function: base resin properties in, core computational state out.
package semantics

import (
	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
)

// Func derives a computational state from base resin properties. Output
// depends only on the base_conductivity property (default 1.0) and fixed
// per-ion coefficients.
type Func func(props model.ResinProps) model.ComputationalState

// effect holds the fixed coefficients of one ion's semantic function.
// Thermal power is signed: all current species are exothermic (negative).
type effect struct {
	conductivityScale float64
	catalyticActivity float64
	structuralRole    float64
	thermalPower      float64
	tribological      float64
	opticalQuality    float64
}

var effects = map[ion.Ion]effect{
	ion.HPlus:   {3.623, 0.10, 0.5, -1090, 0.05, 0.7},
	ion.NaPlus:  {0.8, 0.15, 0.6, -405, 0.03, 0.9},
	ion.KPlus:   {0.9, 0.18, 0.55, -321, 0.04, 0.85},
	ion.Ca2Plus: {0.7, 0.25, 0.7, -1590, 0.08, 0.6},
	ion.Mg2Plus: {0.65, 0.22, 0.75, -1920, 0.09, 0.65},
	ion.Fe3Plus: {0.5, 0.90, 0.7, -4300, 0.15, 0.4},
	ion.Al3Plus: {0.45, 0.85, 0.72, -4660, 0.16, 0.35},
	ion.Cu2Plus: {0.75, 0.60, 0.65, -2100, 0.07, 0.5},
	ion.Zn2Plus: {0.7, 0.55, 0.68, -2040, 0.08, 0.55},
}

// For returns the semantic function registered for the ion, or false when the
// ion has none (the Mixed sentinel in particular).
func For(i ion.Ion) (Func, bool) {
	e, ok := effects[i]
	if !ok {
		return nil, false
	}
	return func(props model.ResinProps) model.ComputationalState {
		base := props.Float("base_conductivity", 1.0)
		s := model.DefaultState()
		s.Conductivity = base * e.conductivityScale
		s.CatalyticActivity = e.catalyticActivity
		s.StructuralRole = e.structuralRole
		s.ThermalPower = e.thermalPower
		s.TribologicalPerformance = e.tribological
		s.OpticalQuality = e.opticalQuality
		return s
	}, true
}
