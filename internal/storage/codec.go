package storage

import (
	"encoding/json"
	"errors"

	"github.com/kleafrog-source/research-resin/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// CurrentVersions stamps a record with the versions this build writes.
func CurrentVersions() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func EncodeResin(r model.Resin) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeResin(data []byte) (model.Resin, error) {
	var resin model.Resin
	if err := json.Unmarshal(data, &resin); err != nil {
		return model.Resin{}, err
	}
	if err := checkVersion(resin.VersionedRecord); err != nil {
		return model.Resin{}, err
	}
	return resin, nil
}

func EncodeStateRecords(records []model.StateRecord) ([]byte, error) {
	return json.Marshal(records)
}

func DecodeStateRecords(data []byte) ([]model.StateRecord, error) {
	var records []model.StateRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := checkVersion(record.VersionedRecord); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func EncodeTrainingSummary(s model.TrainingSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeTrainingSummary(data []byte) (model.TrainingSummary, error) {
	var summary model.TrainingSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.TrainingSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.TrainingSummary{}, err
	}
	return summary, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
