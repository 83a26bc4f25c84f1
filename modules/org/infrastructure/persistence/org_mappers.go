package persistence

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence/models"
)

func ToDBForest(f hierarchy.Forest) []models.OrgChartNode {
	nodes := make([]models.OrgChartNode, 0, len(f))
	for _, n := range f {
		nodes = append(nodes, models.OrgChartNode{
			ID:       n.ID.String(),
			Title:    n.Title,
			Expanded: n.Expanded,
			Children: ToDBForest(n.Children),
		})
	}
	return nodes
}

func ToDomainForest(nodes []models.OrgChartNode) hierarchy.Forest {
	f := make(hierarchy.Forest, 0, len(nodes))
	for _, n := range nodes {
		f = append(f, hierarchy.Node{
			ID:       hierarchy.NodeID(n.ID),
			Title:    n.Title,
			Expanded: n.Expanded,
			Children: ToDomainForest(n.Children),
		})
	}
	return f
}

func ToDBView(v hierarchy.View) models.OrgChartView {
	return models.OrgChartView{
		ID:        v.ID.String(),
		Nodes:     ToDBForest(v.Forest),
		CreatedAt: v.CreatedAt.UnixMilli(),
	}
}

func ToDomainView(model models.OrgChartView) (hierarchy.View, error) {
	id, err := uuid.Parse(model.ID)
	if err != nil {
		return hierarchy.View{}, errors.Wrap(err, fmt.Sprintf("failed to parse UUID from string: %s", model.ID))
	}
	forest := ToDomainForest(model.Nodes)
	if err := hierarchy.Validate(forest); err != nil {
		return hierarchy.View{}, errors.Wrap(err, fmt.Sprintf("stored view %s is corrupt", model.ID))
	}
	return hierarchy.View{
		ID:        id,
		Forest:    forest,
		CreatedAt: time.UnixMilli(model.CreatedAt),
	}, nil
}
