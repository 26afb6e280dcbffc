package store

import (
	"context"

	"gatepass/internal/model"
)

// Store is the storage gateway: the whole dataset is the unit of persistence.
// Callers must treat load -> mutate -> save as a single critical section; the
// gateway itself provides no cross-call transactions.
type Store interface {
	// Load reads the persisted dataset. Any read failure (missing file,
	// malformed content) yields an empty default dataset instead of an
	// error; the system favors availability over failure surfacing here.
	Load(ctx context.Context) *model.Dataset

	// Save serializes and persists the entire dataset, replacing whatever
	// was stored before.
	Save(ctx context.Context, ds *model.Dataset) error
}
