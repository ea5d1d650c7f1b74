package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ComputationalState is the derived property vector of a resin after an ion
// (or mixture) has been applied. The first six fields are always populated by
// the semantic functions; the remaining six default to neutral values until a
// predictor or importer overwrites them.
type ComputationalState struct {
	Conductivity            float64 `json:"conductivity"`
	CatalyticActivity       float64 `json:"catalytic_activity"`
	StructuralRole          float64 `json:"structural_role"`
	ThermalPower            float64 `json:"thermal_power"`
	TribologicalPerformance float64 `json:"tribological_performance"`
	OpticalQuality          float64 `json:"optical_quality"`
	SwellingRatio           float64 `json:"swelling_ratio"`
	MechanicalStrength      float64 `json:"mechanical_strength"`
	IonDiffusionRate        float64 `json:"ion_diffusion_rate"`
	SelectivityCoefficient  float64 `json:"selectivity_coefficient"`
	ChemicalStability       float64 `json:"chemical_stability"`
	SurfaceArea             float64 `json:"surface_area"`
}

// StateFieldNames lists the twelve state fields in canonical export order.
var StateFieldNames = []string{
	"conductivity",
	"catalytic_activity",
	"structural_role",
	"thermal_power",
	"tribological_performance",
	"optical_quality",
	"swelling_ratio",
	"mechanical_strength",
	"ion_diffusion_rate",
	"selectivity_coefficient",
	"chemical_stability",
	"surface_area",
}

// DefaultState returns a state with zero core fields and the extended fields
// at their neutral defaults.
func DefaultState() ComputationalState {
	return ComputationalState{
		SwellingRatio:          1.0,
		MechanicalStrength:     1.0,
		IonDiffusionRate:       1.0,
		SelectivityCoefficient: 1.0,
		ChemicalStability:      1.0,
		SurfaceArea:            1.0,
	}
}

// Property returns the named state field, or false for an unknown name.
func (s ComputationalState) Property(name string) (float64, bool) {
	switch name {
	case "conductivity":
		return s.Conductivity, true
	case "catalytic_activity":
		return s.CatalyticActivity, true
	case "structural_role":
		return s.StructuralRole, true
	case "thermal_power":
		return s.ThermalPower, true
	case "tribological_performance":
		return s.TribologicalPerformance, true
	case "optical_quality":
		return s.OpticalQuality, true
	case "swelling_ratio":
		return s.SwellingRatio, true
	case "mechanical_strength":
		return s.MechanicalStrength, true
	case "ion_diffusion_rate":
		return s.IonDiffusionRate, true
	case "selectivity_coefficient":
		return s.SelectivityCoefficient, true
	case "chemical_stability":
		return s.ChemicalStability, true
	case "surface_area":
		return s.SurfaceArea, true
	default:
		return 0, false
	}
}

// ToMap flattens the state into its twelve named numeric fields.
func (s ComputationalState) ToMap() map[string]float64 {
	out := make(map[string]float64, len(StateFieldNames))
	for _, name := range StateFieldNames {
		value, _ := s.Property(name)
		out[name] = value
	}
	return out
}

// StateFromMap builds a state from a key-value mapping. Recognized keys
// populate the corresponding fields, unknown keys are ignored, and missing
// keys keep the type's defaults.
func StateFromMap(values map[string]float64) ComputationalState {
	s := DefaultState()
	for name, value := range values {
		switch name {
		case "conductivity":
			s.Conductivity = value
		case "catalytic_activity":
			s.CatalyticActivity = value
		case "structural_role":
			s.StructuralRole = value
		case "thermal_power":
			s.ThermalPower = value
		case "tribological_performance":
			s.TribologicalPerformance = value
		case "optical_quality":
			s.OpticalQuality = value
		case "swelling_ratio":
			s.SwellingRatio = value
		case "mechanical_strength":
			s.MechanicalStrength = value
		case "ion_diffusion_rate":
			s.IonDiffusionRate = value
		case "selectivity_coefficient":
			s.SelectivityCoefficient = value
		case "chemical_stability":
			s.ChemicalStability = value
		case "surface_area":
			s.SurfaceArea = value
		}
	}
	return s
}

// ResinProps is the open key-value description of a base resin substrate.
// Values are scalars, strings, or small tuples; simulation code reads it and
// never mutates it.
type ResinProps map[string]any

// Float reads a numeric property, tolerating int-typed values, and falls back
// to def when the key is absent or non-numeric.
func (p ResinProps) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return def
	}
}

// Resin is one record of the reference resin dataset.
type Resin struct {
	VersionedRecord
	Name            string   `json:"name"`
	Manufacturer    string   `json:"manufacturer"`
	Type            string   `json:"type"`
	Structure       string   `json:"structure"`
	FunctionalGroup string   `json:"functional_group"`
	IonicForm       string   `json:"ionic_form"`
	TotalCapacity   *float64 `json:"total_capacity,omitempty"`
	ParticleSizeMM  *float64 `json:"particle_size_mm,omitempty"`
	MaxTemperatureC *float64 `json:"max_temperature_c,omitempty"`
}

// StateRecord ties a computed ion state to the run that produced it.
type StateRecord struct {
	VersionedRecord
	RunID string             `json:"run_id"`
	Ion   string             `json:"ion"`
	State ComputationalState `json:"state"`
}

// TrainingSummary records one predictor training pass.
type TrainingSummary struct {
	VersionedRecord
	RunID       string                        `json:"run_id"`
	SampleCount int                           `json:"sample_count"`
	Properties  []string                      `json:"properties"`
	Importances map[string]map[string]float64 `json:"importances"`
}
