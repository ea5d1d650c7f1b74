package storage

import (
	"errors"
	"testing"

	"github.com/kleafrog-source/research-resin/internal/model"
)

func TestResinCodecRoundTrip(t *testing.T) {
	resin := model.Resin{
		VersionedRecord: CurrentVersions(),
		Name:            "Dowex 50WX8",
		Manufacturer:    "DuPont",
		Type:            "Strong Acid Cation",
		Structure:       "Gel",
		FunctionalGroup: "Sulfonic Acid",
		IonicForm:       "H+",
	}

	payload, err := EncodeResin(resin)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeResin(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Name != resin.Name || decoded.IonicForm != resin.IonicForm {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestDecodeResinVersionMismatch(t *testing.T) {
	resin := model.Resin{
		VersionedRecord: model.VersionedRecord{SchemaVersion: 99, CodecVersion: CurrentCodecVersion},
		Name:            "Old",
		Manufacturer:    "Acme",
		Type:            "Strong Acid Cation",
		Structure:       "Gel",
		FunctionalGroup: "Sulfonic Acid",
		IonicForm:       "H+",
	}
	payload, err := EncodeResin(resin)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeResin(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestStateRecordsCodecChecksEveryRecord(t *testing.T) {
	records := []model.StateRecord{
		{VersionedRecord: CurrentVersions(), RunID: "r", Ion: "H+", State: model.DefaultState()},
		{VersionedRecord: model.VersionedRecord{}, RunID: "r", Ion: "Na+", State: model.DefaultState()},
	}
	payload, err := EncodeStateRecords(records)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeStateRecords(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestTrainingSummaryCodecRoundTrip(t *testing.T) {
	summary := model.TrainingSummary{
		VersionedRecord: CurrentVersions(),
		RunID:           "train-1",
		SampleCount:     9,
		Properties:      []string{"conductivity", "surface_area"},
	}
	payload, err := EncodeTrainingSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeTrainingSummary(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.RunID != summary.RunID || len(decoded.Properties) != 2 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}
