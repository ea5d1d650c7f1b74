// Package predict trains per-property regression models over the ion catalog
// and interpolates those properties for hypothetical new ions.
package predict

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
)

// Properties the predictor learns from computed ion states.
var trainableProperties = []string{
	"conductivity",
	"catalytic_activity",
	"swelling_ratio",
	"mechanical_strength",
	"ion_diffusion_rate",
	"selectivity_coefficient",
	"chemical_stability",
	"optical_quality",
	"surface_area",
}

const (
	// Regression over fewer points is meaningless.
	minTrainingSamples = 3
	testFraction       = 0.2
	splitSeed          = 42
)

// Predictor holds one trained regression model per property. Training and
// prediction against the same instance must not be interleaved concurrently;
// callers serialize a full Train before serving Predict.
type Predictor struct {
	newModel    func() Model
	models      map[string]Model
	importances map[string][]float64
}

// New returns a predictor backed by the default forest regressor.
func New() *Predictor {
	return NewWithBackend(func() Model {
		return NewForest(DefaultForestConfig())
	})
}

// NewWithBackend lets callers swap the regression backend.
func NewWithBackend(newModel func() Model) *Predictor {
	return &Predictor{
		newModel:    newModel,
		models:      make(map[string]Model),
		importances: make(map[string][]float64),
	}
}

// Train fits one model per property from the computed states of the known
// ions. Properties with fewer than three catalogued samples are skipped. The
// held-out test partition mirrors standard training hygiene and is not scored
// further here.
func (p *Predictor) Train(states map[ion.Ion]model.ComputationalState) error {
	var features [][]float64
	var trained []model.ComputationalState

	for _, i := range ion.All() {
		state, ok := states[i]
		if !ok {
			continue
		}
		descriptor, ok := i.PhysicalDescriptor()
		if !ok {
			continue
		}
		features = append(features, descriptor.Features())
		trained = append(trained, state)
	}

	p.models = make(map[string]Model)
	p.importances = make(map[string][]float64)

	for _, property := range trainableProperties {
		targets := make([]float64, len(trained))
		for idx, state := range trained {
			value, ok := state.Property(property)
			if !ok {
				return fmt.Errorf("state has no property %s", property)
			}
			targets[idx] = value
		}
		if len(targets) < minTrainingSamples {
			continue
		}

		trainRows, _ := splitIndices(len(targets), testFraction, splitSeed)
		trainX := make([][]float64, len(trainRows))
		trainY := make([]float64, len(trainRows))
		for idx, r := range trainRows {
			trainX[idx] = features[r]
			trainY[idx] = targets[r]
		}

		m := p.newModel()
		if err := m.Fit(trainX, trainY); err != nil {
			return fmt.Errorf("train %s: %w", property, err)
		}
		p.models[property] = m
		p.importances[property] = m.FeatureImportances()
	}
	return nil
}

// splitIndices performs the seeded 80/20 train/test partition.
func splitIndices(n int, testFrac float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testFrac))
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest]
}

// Predict runs every trained model on the descriptor of a new ion. The result
// is empty when nothing has been trained yet.
func (p *Predictor) Predict(charge, radius, hydrationEnergy, electronegativity, hydrationNumber float64) (map[string]float64, error) {
	features := []float64{charge, radius, hydrationEnergy, electronegativity, hydrationNumber}

	predictions := make(map[string]float64, len(p.models))
	for property, m := range p.models {
		value, err := m.Predict(features)
		if err != nil {
			return nil, fmt.Errorf("predict %s: %w", property, err)
		}
		predictions[property] = value
	}
	return predictions, nil
}

// FeatureImportances reports the named importances for a trained property, or
// an empty map when the property was never trained.
func (p *Predictor) FeatureImportances(property string) map[string]float64 {
	raw, ok := p.importances[property]
	if !ok {
		return map[string]float64{}
	}
	names := ion.FeatureNames()
	out := make(map[string]float64, len(names))
	for idx, name := range names {
		out[name] = raw[idx]
	}
	return out
}

// TrainedProperties lists the properties with a fitted model, sorted.
func (p *Predictor) TrainedProperties() []string {
	out := make([]string, 0, len(p.models))
	for property := range p.models {
		out = append(out, property)
	}
	sort.Strings(out)
	return out
}
