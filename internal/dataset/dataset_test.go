package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReferenceDataset(t *testing.T) {
	resins, err := Load(filepath.Join("..", "..", "data", "resin_datasets.json"))
	require.NoError(t, err)
	require.NotEmpty(t, resins)

	assert.Equal(t, "CalRes 2304", resins[0].Name)
	assert.Equal(t, "Macroporous", resins[0].Structure)
	require.NotNil(t, resins[0].TotalCapacity)
	assert.Equal(t, 0.8, *resins[0].TotalCapacity)

	macro := FilterByStructure(resins, "Macroporous")
	require.NotEmpty(t, macro)
	for _, r := range macro {
		assert.Equal(t, "Macroporous", r.Structure)
	}
}

func TestParseMissingRequiredFieldFails(t *testing.T) {
	payload := []byte(`[
		{
			"name": "NoForm 100",
			"manufacturer": "Acme",
			"type": "Strong Acid Cation",
			"structure": "Gel",
			"functional_group": "Sulfonic Acid"
		}
	]`)
	_, err := Parse(payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ionic_form")
	assert.Contains(t, err.Error(), "record 0")
}

func TestParseBadJSONFails(t *testing.T) {
	_, err := Parse([]byte(`{"not": "an array"`))
	require.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadFailsFastOnPartiallyValidFile(t *testing.T) {
	payload := []byte(`[
		{
			"name": "Good 1",
			"manufacturer": "Acme",
			"type": "Strong Acid Cation",
			"structure": "Gel",
			"functional_group": "Sulfonic Acid",
			"ionic_form": "H+"
		},
		{
			"name": "",
			"manufacturer": "Acme",
			"type": "Strong Acid Cation",
			"structure": "Gel",
			"functional_group": "Sulfonic Acid",
			"ionic_form": "H+"
		}
	]`)
	path := filepath.Join(t.TempDir(), "resins.json")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	_, err := Load(path)
	require.Error(t, err, "one bad record must fail the whole load")
	assert.Contains(t, err.Error(), "record 1")
}
