// Package export serializes computed ion states to flat JSON and CSV forms
// and writes per-run export artifacts with a JSON run index.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/kleafrog-source/research-resin/internal/ion"
	"github.com/kleafrog-source/research-resin/internal/model"
)

const runIndexFile = "run_index.json"

// StatesToCSV writes one row per ion: the ion symbol plus the twelve state
// fields, in catalog order.
func StatesToCSV(w io.Writer, states map[ion.Ion]model.ComputationalState) error {
	writer := csv.NewWriter(w)

	header := append([]string{"ion"}, model.StateFieldNames...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, i := range ion.All() {
		state, ok := states[i]
		if !ok {
			continue
		}
		row := make([]string, 0, len(header))
		row = append(row, string(i))
		values := state.ToMap()
		for _, name := range model.StateFieldNames {
			row = append(row, strconv.FormatFloat(values[name], 'g', -1, 64))
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// StatesToJSON flattens each state into its named numeric fields, keyed by
// ion symbol.
func StatesToJSON(states map[ion.Ion]model.ComputationalState) ([]byte, error) {
	flat := make(map[string]map[string]float64, len(states))
	for i, state := range states {
		flat[string(i)] = state.ToMap()
	}
	return json.MarshalIndent(flat, "", "    ")
}

// StatesFromJSON rebuilds ion states from a flat JSON export. Unknown state
// keys are ignored and missing keys take the type's defaults; entries keyed
// by an unrecognized ion symbol are skipped.
func StatesFromJSON(data []byte) (map[ion.Ion]model.ComputationalState, error) {
	var flat map[string]map[string]float64
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("decode states JSON: %w", err)
	}

	states := make(map[ion.Ion]model.ComputationalState, len(flat))
	for symbol, values := range flat {
		i, err := ion.FromString(symbol)
		if err != nil || !i.Concrete() {
			continue
		}
		states[i] = model.StateFromMap(values)
	}
	return states, nil
}

// RunIndexEntry is one line of the exports directory index.
type RunIndexEntry struct {
	RunID        string `json:"run_id"`
	IonCount     int    `json:"ion_count"`
	CreatedAtUTC string `json:"created_at_utc"`
}

// WriteRunArtifacts writes states.csv and states.json for a run under
// baseDir/runID and records the run in the index. It returns the run
// directory.
func WriteRunArtifacts(baseDir, runID, createdAtUTC string, states map[ion.Ion]model.ComputationalState) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("run id is required")
	}

	runDir := filepath.Join(baseDir, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	if err := StatesToCSV(csvFile, states); err != nil {
		_ = csvFile.Close()
		return "", err
	}
	if err := csvFile.Close(); err != nil {
		return "", err
	}

	jsonData, err := StatesToJSON(states)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(runDir, "states.json"), jsonData, 0o644); err != nil {
		return "", err
	}

	entry := RunIndexEntry{RunID: runID, IonCount: len(states), CreatedAtUTC: createdAtUTC}
	if err := appendRunIndex(baseDir, entry); err != nil {
		return "", err
	}
	return runDir, nil
}

func appendRunIndex(baseDir string, entry RunIndexEntry) error {
	index, err := ListRunIndex(baseDir)
	if err != nil {
		return err
	}

	for i := range index {
		if index[i].RunID == entry.RunID {
			index[i] = entry
			return writeJSON(filepath.Join(baseDir, runIndexFile), index)
		}
	}

	index = append(index, entry)
	return writeJSON(filepath.Join(baseDir, runIndexFile), index)
}

// ListRunIndex reads the export index, newest first.
func ListRunIndex(baseDir string) ([]RunIndexEntry, error) {
	path := filepath.Join(baseDir, runIndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunIndexEntry{}, nil
		}
		return nil, err
	}

	var entries []RunIndexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAtUTC > entries[j].CreatedAtUTC
	})
	return entries, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
