package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/pkg/composables"
	"github.com/apper-apps/india-website-drive/pkg/eventbus"
)

type HierarchyService struct {
	loader    hierarchy.StructureLoader
	repo      hierarchy.ViewRepository
	publisher eventbus.EventBus
	now       func() time.Time
}

func NewHierarchyService(
	loader hierarchy.StructureLoader,
	repo hierarchy.ViewRepository,
	publisher eventbus.EventBus,
) *HierarchyService {
	return &HierarchyService{
		loader:    loader,
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Structure returns the forest as supplied by the loader.
func (s *HierarchyService) Structure(ctx context.Context) (hierarchy.Forest, error) {
	return s.loader.Load(ctx)
}

// OpenView loads the structure and stores it as a new view.
func (s *HierarchyService) OpenView(ctx context.Context) (hierarchy.View, error) {
	forest, err := s.loader.Load(ctx)
	if err != nil {
		recordViewOpened(false)
		return hierarchy.View{}, err
	}
	view, err := s.repo.Create(ctx, forest)
	if err != nil {
		recordViewOpened(false)
		return hierarchy.View{}, err
	}
	recordViewOpened(true)
	composables.UseLogger(ctx).WithField("view-id", view.ID).Debug("org chart view opened")
	return view, nil
}

func (s *HierarchyService) View(ctx context.Context, id uuid.UUID) (hierarchy.View, error) {
	return s.repo.GetByID(ctx, id)
}

// ViewOrOpen returns the view with the given id, or a fresh one when it has
// expired or was never created.
func (s *HierarchyService) ViewOrOpen(ctx context.Context, id uuid.UUID) (hierarchy.View, error) {
	if id != uuid.Nil {
		view, err := s.repo.GetByID(ctx, id)
		if err == nil {
			return view, nil
		}
		if !errors.Is(err, hierarchy.ErrViewNotFound) {
			return hierarchy.View{}, err
		}
	}
	return s.OpenView(ctx)
}

// Toggle flips one node of a stored view. An unknown node id leaves the
// view unchanged and is not an error.
func (s *HierarchyService) Toggle(ctx context.Context, viewID uuid.UUID, nodeID hierarchy.NodeID) (hierarchy.View, error) {
	view, toggled, err := s.repo.Toggle(ctx, viewID, nodeID)
	if err != nil {
		return hierarchy.View{}, err
	}
	if !toggled {
		recordToggle("noop")
		composables.UseLogger(ctx).WithField("node-id", nodeID).Debug("org chart toggle matched no node")
		return view, nil
	}
	recordToggle("toggled")

	node, _ := hierarchy.Find(view.Forest, nodeID)
	s.publisher.Publish(&hierarchy.NodeToggledEvent{
		ViewID:   view.ID,
		NodeID:   nodeID,
		Expanded: node.Expanded,
		At:       s.now(),
	})
	return view, nil
}

func (s *HierarchyService) CloseView(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
