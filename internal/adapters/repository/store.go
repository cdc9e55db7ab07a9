// Package repository defines the catalog snapshot store and errors.
//
// The engine computes over immutable snapshots; the store's only job is
// to hold the current snapshot and hand out copies so no caller can
// mutate shared state.
package repository

import (
	"context"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// Snapshot is one consistent view of the catalog supplied by the booking
// backend.
type Snapshot struct {
	Trainers   []model.Trainer
	Activities []model.Activity
	Bindings   []model.PackageActivity
}

// Store provides atomic replace and copy-on-read access to the catalog.
type Store interface {
	// Replace swaps in a new snapshot. Returns ErrEmptySnapshot when the
	// snapshot carries no data at all.
	Replace(ctx context.Context, snap Snapshot) error

	// Trainers returns a copy of the current trainer collection.
	Trainers(ctx context.Context) []model.Trainer

	// Activities returns a copy of the current activity collection.
	Activities(ctx context.Context) []model.Activity

	// Bindings returns a copy of the current package-activity bindings.
	Bindings(ctx context.Context) []model.PackageActivity

	// Counts returns the collection sizes of the current snapshot.
	Counts(ctx context.Context) (trainerCount, activityCount, bindingCount int)
}
