// Package simulation implements the resin simulation engine: single-ion
// application, bulk generation, program execution, osmotic degradation, and
// two-ion mixing.
package simulation

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
	"github.com/kleafrog-source/research-resin/internal/semantics"
)

// ErrUnsupportedIon marks an ion that cannot be applied directly: the mixed
// sentinel, or a species with no registered semantic function.
var ErrUnsupportedIon = errors.New("unsupported ion")

// AllIonsFailedError is returned by GenerateAll when every single species
// fails. It carries each per-ion failure for diagnostics.
type AllIonsFailedError struct {
	Failures map[ion.Ion]error
}

func (e *AllIonsFailedError) Error() string {
	msgs := make([]string, 0, len(e.Failures)+1)
	msgs = append(msgs, "failed to generate any ion states:")
	for _, i := range ion.All() {
		if err, ok := e.Failures[i]; ok {
			msgs = append(msgs, fmt.Sprintf("%s: %v", i, err))
		}
	}
	return strings.Join(msgs, "\n")
}

// BaseResinProps returns the reference property set of the base resin
// substrate.
func BaseResinProps() model.ResinProps {
	return model.ResinProps{
		"base_conductivity":     0.01,
		"polymer_type":          "styrene-divinylbenzene",
		"crosslinking_density":  0.08,
		"water_content":         0.53,
		"total_capacity":        1.8,
		"dynamic_capacity":      526,
		"granule_size_min":      0.315,
		"granule_size_max":      1.25,
		"effective_size":        0.45,
		"uniformity_coefficient": 1.7,
		"osmotic_stability":     0.945,
		"max_temperature":       120,
		"pH_range":              [2]float64{0, 14},
		"volume_change_H_Na":    0.085,
		"base_structural_role":  0.6,
	}
}

// Apply runs the ion's semantic function against the resin properties.
func Apply(i ion.Ion, props model.ResinProps) (model.ComputationalState, error) {
	if i == ion.Mixed {
		return model.ComputationalState{}, fmt.Errorf("%w: mixed state requires a composition", ErrUnsupportedIon)
	}
	fn, ok := semantics.For(i)
	if !ok {
		return model.ComputationalState{}, fmt.Errorf("%w: no semantic function for %s", ErrUnsupportedIon, i)
	}
	return fn(props), nil
}

// GenerateAll applies every concrete ion. Individual failures are logged and
// skipped; only when every species fails does it return an AllIonsFailedError.
func GenerateAll(logger *slog.Logger, props model.ResinProps) (map[ion.Ion]model.ComputationalState, error) {
	if logger == nil {
		logger = slog.Default()
	}

	states := make(map[ion.Ion]model.ComputationalState)
	failures := make(map[ion.Ion]error)

	for _, i := range ion.All() {
		state, err := Apply(i, props)
		if err != nil {
			failures[i] = err
			logger.Warn("ion state generation failed", "ion", string(i), "error", err)
			continue
		}
		states[i] = state
	}

	if len(states) == 0 && len(failures) > 0 {
		return nil, &AllIonsFailedError{Failures: failures}
	}
	if len(failures) > 0 {
		logger.Warn("some ion states could not be generated", "failed", len(failures), "ok", len(states))
	}
	return states, nil
}

// RunProgram applies each ion of the program in order and reports the final
// state. Each step re-derives its state from the resin properties alone; the
// underlying model does not accumulate state across steps.
func RunProgram(program []ion.Ion, props model.ResinProps) (model.ComputationalState, error) {
	if len(program) == 0 {
		return model.ComputationalState{}, errors.New("empty program")
	}

	var final model.ComputationalState
	for step, i := range program {
		state, err := Apply(i, props)
		if err != nil {
			return model.ComputationalState{}, fmt.Errorf("program step %d (%s): %w", step, i, err)
		}
		final = state
	}
	return final, nil
}
