package storage

import (
	"context"

	"github.com/kleafrog-source/research-resin/internal/model"
)

// Store defines persistence operations for resin records, computed ion
// states, and predictor training summaries.
type Store interface {
	Init(ctx context.Context) error
	SaveResin(ctx context.Context, resin model.Resin) error
	GetResin(ctx context.Context, name string) (model.Resin, bool, error)
	ListResins(ctx context.Context) ([]model.Resin, error)
	SaveIonStates(ctx context.Context, runID string, records []model.StateRecord) error
	GetIonStates(ctx context.Context, runID string) ([]model.StateRecord, bool, error)
	SaveTrainingSummary(ctx context.Context, summary model.TrainingSummary) error
	GetTrainingSummary(ctx context.Context, runID string) (model.TrainingSummary, bool, error)
}
