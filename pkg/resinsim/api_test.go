package resinsim

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	base := t.TempDir()
	datasetPath := filepath.Join(base, "resins.json")
	writeTestDataset(t, datasetPath)

	client, err := New(Options{
		StoreKind:   "memory",
		DatasetPath: datasetPath,
		ExportsDir:  filepath.Join(base, "exports"),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})

	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return client
}

func writeTestDataset(t *testing.T, path string) {
	t.Helper()

	data := `[
		{
			"name": "CalRes 2304",
			"manufacturer": "Calgon Carbon",
			"type": "Strong Base Anion",
			"structure": "Macroporous",
			"functional_group": "Quaternary Ammonium",
			"ionic_form": "Cl-"
		},
		{
			"name": "Amberlite IRA410",
			"manufacturer": "DuPont",
			"type": "Strong Base Anion",
			"structure": "Gel",
			"functional_group": "Quaternary Ammonium",
			"ionic_form": "Cl-"
		}
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}

func TestClientGenerateStatesAndReload(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.GenerateStates(ctx, client.BaseResinProps())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if summary.RunID == "" {
		t.Fatal("expected a run id")
	}
	if len(summary.States) != 9 {
		t.Fatalf("expected 9 states, got %d", len(summary.States))
	}

	reloaded, err := client.States(ctx, summary.RunID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded) != len(summary.States) {
		t.Fatalf("reload size mismatch: %d vs %d", len(reloaded), len(summary.States))
	}
	for i, state := range summary.States {
		if got := reloaded[i]; got != state {
			t.Fatalf("state for %s changed across reload", i)
		}
	}
}

func TestClientStatesUnknownRun(t *testing.T) {
	client := newTestClient(t)
	if _, err := client.States(context.Background(), "no-such-run"); err == nil {
		t.Fatal("expected error for unknown run")
	}
}

func TestClientApplyAndProgram(t *testing.T) {
	client := newTestClient(t)
	props := client.BaseResinProps()

	fromApply, err := client.ApplyIon("Ca2+", props)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	fromProgram, err := client.RunProgram([]string{"H+", "Na+", "Ca2+"}, props)
	if err != nil {
		t.Fatalf("program: %v", err)
	}
	if fromProgram != fromApply {
		t.Fatal("program final state should match applying the last step alone")
	}

	if _, err := client.ApplyIon("Xx9+", props); err == nil {
		t.Fatal("expected error for unknown ion")
	}
}

func TestClientMixAndDegrade(t *testing.T) {
	client := newTestClient(t)
	props := client.BaseResinProps()

	mixed, err := client.MixIons("H+", "Na+", 0.5, props)
	if err != nil {
		t.Fatalf("mix: %v", err)
	}
	if mixed.StructuralRole <= 0 {
		t.Fatalf("unexpected structural role %v", mixed.StructuralRole)
	}

	fresh, err := client.ApplyIon("H+", props)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	aged, err := client.DegradeIon("H+", 50, "базовый", props)
	if err != nil {
		t.Fatalf("degrade: %v", err)
	}
	if aged.Conductivity >= fresh.Conductivity {
		t.Fatal("degradation should reduce conductivity")
	}

	if _, err := client.DegradeIon("H+", -1, "базовый", props); err == nil {
		t.Fatal("expected error for negative cycles")
	}
}

func TestClientTrainAndPredict(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.Train(ctx, "", client.BaseResinProps())
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	if summary.RunID == "" {
		t.Fatal("expected a run id")
	}
	if summary.SampleCount != 9 {
		t.Fatalf("expected 9 samples, got %d", summary.SampleCount)
	}
	if len(summary.Properties) == 0 {
		t.Fatal("expected trained properties")
	}

	predicted, err := client.PredictIon("K+")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	for property, value := range predicted {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			t.Fatalf("property %s predicted %v", property, value)
		}
	}

	custom, err := client.PredictCustom(2, 0.8, -1700, 1.4, 7)
	if err != nil {
		t.Fatalf("predict custom: %v", err)
	}
	if len(custom) != len(predicted) {
		t.Fatalf("custom prediction covered %d properties, want %d", len(custom), len(predicted))
	}

	importances := client.FeatureImportances(summary.Properties[0])
	if len(importances) == 0 {
		t.Fatalf("expected importances for %s", summary.Properties[0])
	}
}

func TestClientPredictBeforeTrain(t *testing.T) {
	client := newTestClient(t)
	if _, err := client.PredictIon("K+"); err == nil {
		t.Fatal("expected error before training")
	}
}

func TestClientRecommend(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	props := client.BaseResinProps()

	results, err := client.Recommend(ctx, "", "stability", nil, 0.5, props)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatal("results not sorted by score")
		}
	}

	best, found, err := client.BestMatch(ctx, "", "stability", nil, 0.5, props)
	if err != nil {
		t.Fatalf("best match: %v", err)
	}
	if !found {
		t.Fatal("expected a best match")
	}
	if best.Ion != results[0].Ion {
		t.Fatalf("best match %s disagrees with top result %s", best.Ion, results[0].Ion)
	}

	if _, err := client.Recommend(ctx, "", "plasma", nil, 0, props); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestClientDatasetAndTOC(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	resins, err := client.ImportDataset(ctx)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(resins) != 2 {
		t.Fatalf("expected 2 resins, got %d", len(resins))
	}

	listed, err := client.ListResins(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 stored resins, got %d", len(listed))
	}

	result, err := client.SimulateTOCRemoval(ctx, "CalRes 2304", "Tannic Acid", 10, 7)
	if err != nil {
		t.Fatalf("toc: %v", err)
	}
	if result.RemovalEfficiency <= 0 || result.RemovalEfficiency >= 1 {
		t.Fatalf("efficiency out of range: %v", result.RemovalEfficiency)
	}
	if result.FinalTOC >= 10 {
		t.Fatalf("final TOC should drop below initial, got %v", result.FinalTOC)
	}

	if _, err := client.SimulateTOCRemoval(ctx, "Unknown Resin", "Tannic Acid", 10, 7); err == nil {
		t.Fatal("expected error for unknown resin")
	}
}

func TestClientExportAndRuns(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	summary, err := client.GenerateStates(ctx, client.BaseResinProps())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	exported, err := client.ExportRun(ctx, summary.RunID)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"states.csv", "states.json"} {
		if _, err := os.Stat(filepath.Join(exported.Directory, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}

	runs, err := client.Runs(10)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 indexed run, got %d", len(runs))
	}
	if runs[0].RunID != summary.RunID || runs[0].IonCount != 9 {
		t.Fatalf("unexpected index entry: %+v", runs[0])
	}

	if _, err := client.ExportRun(ctx, ""); err == nil {
		t.Fatal("expected error for empty run id")
	}
}
