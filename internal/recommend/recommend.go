// Package recommend scores known ion states against named application
// profiles by counting satisfied property ranges.
package recommend

import (
	"fmt"
	"sort"

	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
)

// Range is an inclusive requirement interval for one state property.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Requirements maps property names to their acceptable ranges.
type Requirements map[string]Range

// ProfileCustom selects caller-supplied requirements instead of the built-in
// profile table.
const ProfileCustom = "custom"

var profiles = map[string]Requirements{
	"catalysis": {
		"catalytic_activity": {0.7, 1.0},
		"chemical_stability": {0.8, 1.0},
		"surface_area":       {1.0, 2.0},
	},
	"conductivity": {
		"conductivity":       {0.1, 1.0},
		"ion_diffusion_rate": {1.5, 3.0},
		"swelling_ratio":     {0.9, 1.1},
	},
	"mechanical": {
		"mechanical_strength": {1.2, 2.0},
		"swelling_ratio":      {0.8, 1.2},
		"chemical_stability":  {0.7, 1.0},
	},
	"optical": {
		"optical_quality":    {0.8, 1.0},
		"surface_area":       {1.0, 1.5},
		"chemical_stability": {0.9, 1.0},
	},
	"stability": {
		"chemical_stability":  {0.9, 1.0},
		"mechanical_strength": {1.0, 2.0},
		"thermal_power":       {-500, 500},
	},
}

// Profiles lists the built-in application profile names, sorted.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfileRequirements exposes the built-in requirement table for a profile.
func ProfileRequirements(name string) (Requirements, bool) {
	reqs, ok := profiles[name]
	return reqs, ok
}

// Result is one scored ion recommendation.
type Result struct {
	Ion     ion.Ion                  `json:"ion"`
	Score   float64                  `json:"score"`
	State   model.ComputationalState `json:"state"`
	Matched []string                 `json:"matched_requirements"`
}

// Recommender scores a fixed set of known ion states.
type Recommender struct {
	states map[ion.Ion]model.ComputationalState
}

func New(states map[ion.Ion]model.ComputationalState) *Recommender {
	return &Recommender{states: states}
}

// Recommend scores every known ion against the profile and keeps those at or
// above minScore, sorted by descending score. Ties keep catalog encounter
// order. For the "custom" profile the caller's ranges are used; they may be
// empty, in which case every ion scores zero.
func (r *Recommender) Recommend(profile string, custom Requirements, minScore float64) ([]Result, error) {
	var requirements Requirements
	if profile == ProfileCustom {
		requirements = custom
	} else {
		reqs, ok := profiles[profile]
		if !ok {
			return nil, fmt.Errorf("unknown application profile: %q", profile)
		}
		requirements = reqs
	}

	var results []Result
	for _, i := range ion.All() {
		state, ok := r.states[i]
		if !ok {
			continue
		}
		score, matched := evaluate(state, requirements)
		if score >= minScore {
			results = append(results, Result{Ion: i, Score: score, State: state, Matched: matched})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	return results, nil
}

// BestMatch returns only the top recommendation, or false when nothing
// clears minScore.
func (r *Recommender) BestMatch(profile string, custom Requirements, minScore float64) (Result, bool, error) {
	results, err := r.Recommend(profile, custom, minScore)
	if err != nil {
		return Result{}, false, err
	}
	if len(results) == 0 {
		return Result{}, false, nil
	}
	return results[0], true, nil
}

// evaluate counts satisfied requirements. Score is matched/total, zero when
// the profile carries no requirements.
func evaluate(state model.ComputationalState, requirements Requirements) (float64, []string) {
	if len(requirements) == 0 {
		return 0, nil
	}

	names := make([]string, 0, len(requirements))
	for name := range requirements {
		names = append(names, name)
	}
	sort.Strings(names)

	var matched []string
	for _, name := range names {
		value, ok := state.Property(name)
		if !ok {
			continue
		}
		rng := requirements[name]
		if value >= rng.Min && value <= rng.Max {
			matched = append(matched, name)
		}
	}
	return float64(len(matched)) / float64(len(requirements)), matched
}
