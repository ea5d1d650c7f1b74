// Package resinsim is the public entry point for the ion-exchange resin
// simulation platform: it wires the store, the simulation engine, the
// property predictor and the recommendation engine behind one client.
package resinsim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kleafrog-source/research-resin/internal/dataset"
	"github.com/kleafrog-source/research-resin/internal/export"
	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
	"github.com/kleafrog-source/research-resin/internal/predict"
	"github.com/kleafrog-source/research-resin/internal/recommend"
	"github.com/kleafrog-source/research-resin/internal/simulation"
	"github.com/kleafrog-source/research-resin/internal/storage"
)

const (
	defaultDBPath      = "resin.db"
	defaultDatasetPath = "data/resin_datasets.json"
	defaultExportsDir  = "exports"
)

type Options struct {
	StoreKind   string
	DBPath      string
	DatasetPath string
	ExportsDir  string
	Logger      *slog.Logger
}

type Client struct {
	store     storage.Store
	predictor *predict.Predictor
	logger    *slog.Logger

	datasetPath string
	exportsDir  string
}

// GenerateSummary reports one persisted generation run.
type GenerateSummary struct {
	RunID  string
	States map[ion.Ion]model.ComputationalState
}

// TrainSummary reports one predictor training pass.
type TrainSummary struct {
	RunID       string
	SampleCount int
	Properties  []string
}

type ExportSummary struct {
	RunID     string
	Directory string
}

type RunItem struct {
	RunID        string
	IonCount     int
	CreatedAtUTC string
}

func New(opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	datasetPath := opts.DatasetPath
	if datasetPath == "" {
		datasetPath = defaultDatasetPath
	}
	exportsDir := opts.ExportsDir
	if exportsDir == "" {
		exportsDir = defaultExportsDir
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:       store,
		predictor:   predict.New(),
		logger:      logger,
		datasetPath: datasetPath,
		exportsDir:  exportsDir,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

// BaseResinProps exposes the reference resin property set so callers can
// tweak it before simulating.
func (c *Client) BaseResinProps() model.ResinProps {
	return simulation.BaseResinProps()
}

// ApplyIon computes the state for one ionic form.
func (c *Client) ApplyIon(symbol string, props model.ResinProps) (model.ComputationalState, error) {
	i, err := ion.FromString(symbol)
	if err != nil {
		return model.ComputationalState{}, err
	}
	return simulation.Apply(i, props)
}

// GenerateStates computes states for the full catalog, persists them under a
// fresh run ID and returns both.
func (c *Client) GenerateStates(ctx context.Context, props model.ResinProps) (GenerateSummary, error) {
	states, err := simulation.GenerateAll(c.logger, props)
	if err != nil {
		return GenerateSummary{}, err
	}

	runID := uuid.NewString()
	records := make([]model.StateRecord, 0, len(states))
	for _, i := range ion.All() {
		state, ok := states[i]
		if !ok {
			continue
		}
		records = append(records, model.StateRecord{
			VersionedRecord: storage.CurrentVersions(),
			RunID:           runID,
			Ion:             string(i),
			State:           state,
		})
	}
	if err := c.store.SaveIonStates(ctx, runID, records); err != nil {
		return GenerateSummary{}, fmt.Errorf("persist ion states: %w", err)
	}

	c.logger.Info("generated ion states", "run_id", runID, "ions", len(records))
	return GenerateSummary{RunID: runID, States: states}, nil
}

// States loads a previously generated state set.
func (c *Client) States(ctx context.Context, runID string) (map[ion.Ion]model.ComputationalState, error) {
	records, found, err := c.store.GetIonStates(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("run %s not found", runID)
	}

	states := make(map[ion.Ion]model.ComputationalState, len(records))
	for _, record := range records {
		i, err := ion.FromString(record.Ion)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", runID, err)
		}
		states[i] = record.State
	}
	return states, nil
}

// RunProgram replaces the ionic form step by step and returns the final state.
func (c *Client) RunProgram(symbols []string, props model.ResinProps) (model.ComputationalState, error) {
	program := make([]ion.Ion, 0, len(symbols))
	for _, symbol := range symbols {
		i, err := ion.FromString(symbol)
		if err != nil {
			return model.ComputationalState{}, err
		}
		program = append(program, i)
	}
	return simulation.RunProgram(program, props)
}

// MixIons computes the state of a two-ion loading.
func (c *Client) MixIons(symbol1, symbol2 string, fraction1 float64, props model.ResinProps) (model.ComputationalState, error) {
	i1, err := ion.FromString(symbol1)
	if err != nil {
		return model.ComputationalState{}, err
	}
	i2, err := ion.FromString(symbol2)
	if err != nil {
		return model.ComputationalState{}, err
	}
	return simulation.Mix(i1, i2, fraction1, props)
}

// DegradeIon applies an ionic form and then ages it over regeneration cycles.
func (c *Client) DegradeIon(symbol string, cycles int, grade string, props model.ResinProps) (model.ComputationalState, error) {
	if cycles < 0 {
		return model.ComputationalState{}, errors.New("cycles must be >= 0")
	}
	initial, err := c.ApplyIon(symbol, props)
	if err != nil {
		return model.ComputationalState{}, err
	}
	return simulation.Degrade(initial, cycles, grade), nil
}

// Train fits the property predictor on a stored run, or on a fresh generation
// when runID is empty, and persists a training summary under the run ID.
func (c *Client) Train(ctx context.Context, runID string, props model.ResinProps) (TrainSummary, error) {
	var states map[ion.Ion]model.ComputationalState
	var err error
	if runID == "" {
		var generated GenerateSummary
		generated, err = c.GenerateStates(ctx, props)
		if err != nil {
			return TrainSummary{}, err
		}
		runID = generated.RunID
		states = generated.States
	} else {
		states, err = c.States(ctx, runID)
		if err != nil {
			return TrainSummary{}, err
		}
	}

	if err := c.predictor.Train(states); err != nil {
		return TrainSummary{}, err
	}

	properties := c.predictor.TrainedProperties()
	importances := make(map[string]map[string]float64, len(properties))
	for _, property := range properties {
		importances[property] = c.predictor.FeatureImportances(property)
	}
	summary := model.TrainingSummary{
		VersionedRecord: storage.CurrentVersions(),
		RunID:           runID,
		SampleCount:     len(states),
		Properties:      properties,
		Importances:     importances,
	}
	if err := c.store.SaveTrainingSummary(ctx, summary); err != nil {
		return TrainSummary{}, fmt.Errorf("persist training summary: %w", err)
	}

	c.logger.Info("trained predictor", "run_id", runID, "samples", len(states), "properties", len(properties))
	return TrainSummary{RunID: runID, SampleCount: len(states), Properties: properties}, nil
}

// PredictIon predicts properties for a cataloged ion using its physical
// descriptor. The predictor must have been trained first.
func (c *Client) PredictIon(symbol string) (map[string]float64, error) {
	i, err := ion.FromString(symbol)
	if err != nil {
		return nil, err
	}
	d, ok := i.PhysicalDescriptor()
	if !ok {
		return nil, fmt.Errorf("no physical descriptor for ion %s", i)
	}
	return c.PredictCustom(d.Charge, d.Radius, d.HydrationEnergy, d.Electronegativity, d.HydrationNumber)
}

// PredictCustom predicts properties for a hypothetical ion described by raw
// physical features.
func (c *Client) PredictCustom(charge, radius, hydrationEnergy, electronegativity, hydrationNumber float64) (map[string]float64, error) {
	if len(c.predictor.TrainedProperties()) == 0 {
		return nil, errors.New("predictor is not trained, run Train first")
	}
	return c.predictor.Predict(charge, radius, hydrationEnergy, electronegativity, hydrationNumber)
}

// FeatureImportances reports the trained importance weights for one property.
func (c *Client) FeatureImportances(property string) map[string]float64 {
	return c.predictor.FeatureImportances(property)
}

// Recommend scores a stored run, or a fresh generation when runID is empty,
// against an application profile.
func (c *Client) Recommend(ctx context.Context, runID, profile string, custom recommend.Requirements, minScore float64, props model.ResinProps) ([]recommend.Result, error) {
	states, err := c.statesForRun(ctx, runID, props)
	if err != nil {
		return nil, err
	}
	return recommend.New(states).Recommend(profile, custom, minScore)
}

// BestMatch returns the top recommendation for a profile, if any ion clears
// the score threshold.
func (c *Client) BestMatch(ctx context.Context, runID, profile string, custom recommend.Requirements, minScore float64, props model.ResinProps) (recommend.Result, bool, error) {
	states, err := c.statesForRun(ctx, runID, props)
	if err != nil {
		return recommend.Result{}, false, err
	}
	return recommend.New(states).BestMatch(profile, custom, minScore)
}

func (c *Client) statesForRun(ctx context.Context, runID string, props model.ResinProps) (map[ion.Ion]model.ComputationalState, error) {
	if runID == "" {
		generated, err := c.GenerateStates(ctx, props)
		if err != nil {
			return nil, err
		}
		return generated.States, nil
	}
	return c.States(ctx, runID)
}

// ImportDataset loads the reference resin dataset from disk and persists
// every record.
func (c *Client) ImportDataset(ctx context.Context) ([]model.Resin, error) {
	resins, err := dataset.Load(c.datasetPath)
	if err != nil {
		return nil, err
	}
	for i := range resins {
		resins[i].VersionedRecord = storage.CurrentVersions()
		if err := c.store.SaveResin(ctx, resins[i]); err != nil {
			return nil, fmt.Errorf("persist resin %s: %w", resins[i].Name, err)
		}
	}
	c.logger.Info("imported resin dataset", "path", c.datasetPath, "resins", len(resins))
	return resins, nil
}

// ListResins returns all stored resins, sorted by name.
func (c *Client) ListResins(ctx context.Context) ([]model.Resin, error) {
	return c.store.ListResins(ctx)
}

// SimulateTOCRemoval predicts organic carbon removal for a stored resin.
func (c *Client) SimulateTOCRemoval(ctx context.Context, resinName, contaminant string, initialTOC, pH float64) (simulation.TOCResult, error) {
	resin, found, err := c.store.GetResin(ctx, resinName)
	if err != nil {
		return simulation.TOCResult{}, err
	}
	if !found {
		return simulation.TOCResult{}, fmt.Errorf("resin %s not found, import the dataset first", resinName)
	}
	return simulation.SimulateTOCRemoval(resin, contaminant, initialTOC, pH)
}

// ExportRun writes CSV and JSON artifacts for a stored run and appends it to
// the run index.
func (c *Client) ExportRun(ctx context.Context, runID string) (ExportSummary, error) {
	if runID == "" {
		return ExportSummary{}, errors.New("run id is required")
	}
	states, err := c.States(ctx, runID)
	if err != nil {
		return ExportSummary{}, err
	}

	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	dir, err := export.WriteRunArtifacts(c.exportsDir, runID, createdAt, states)
	if err != nil {
		return ExportSummary{}, err
	}

	c.logger.Info("exported run artifacts", "run_id", runID, "dir", dir)
	return ExportSummary{RunID: runID, Directory: filepath.Clean(dir)}, nil
}

// Runs lists exported runs, newest first.
func (c *Client) Runs(limit int) ([]RunItem, error) {
	if limit <= 0 {
		limit = 20
	}
	entries, err := export.ListRunIndex(c.exportsDir)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]RunItem, 0, len(entries))
	for _, e := range entries {
		out = append(out, RunItem{
			RunID:        e.RunID,
			IonCount:     e.IonCount,
			CreatedAtUTC: e.CreatedAtUTC,
		})
	}
	return out, nil
}
