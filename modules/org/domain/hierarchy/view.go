package hierarchy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrViewNotFound = errors.New("hierarchy: view not found")

// View is one visitor's copy of the organization structure.
type View struct {
	ID        uuid.UUID
	Forest    Forest
	CreatedAt time.Time
}

type ViewRepository interface {
	Create(ctx context.Context, forest Forest) (View, error)
	GetByID(ctx context.Context, id uuid.UUID) (View, error)
	// Toggle applies Toggle to the stored forest. toggled is false when no node matched.
	Toggle(ctx context.Context, id uuid.UUID, nodeID NodeID) (view View, toggled bool, err error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StructureLoader supplies the initial forest for new views.
type StructureLoader interface {
	Load(ctx context.Context) (Forest, error)
}

type NodeToggledEvent struct {
	ViewID   uuid.UUID
	NodeID   NodeID
	Expanded bool
	At       time.Time
}
