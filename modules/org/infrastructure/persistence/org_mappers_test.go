package persistence_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence/models"
)

func TestToDomainView(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	created := time.UnixMilli(1705312800000)
	view := hierarchy.View{
		ID:        id,
		CreatedAt: created,
		Forest: hierarchy.Forest{
			{ID: "1", Title: "CEO", Expanded: true, Children: hierarchy.Forest{{ID: "2", Title: "CTO", Children: hierarchy.Forest{}}}},
		},
	}

	got, err := persistence.ToDomainView(persistence.ToDBView(view))
	require.NoError(t, err)
	assert.Equal(t, view.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, view.Forest, got.Forest)
}

func TestToDomainView_Errors(t *testing.T) {
	t.Parallel()

	_, err := persistence.ToDomainView(models.OrgChartView{ID: "not-a-uuid"})
	require.Error(t, err)

	_, err = persistence.ToDomainView(models.OrgChartView{
		ID:    uuid.NewString(),
		Nodes: []models.OrgChartNode{{ID: "1"}, {ID: "1"}},
	})
	require.ErrorIs(t, err, hierarchy.ErrDuplicateNodeID)
}
