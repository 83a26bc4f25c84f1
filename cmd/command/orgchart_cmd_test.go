package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
)

func TestPrintForest(t *testing.T) {
	color.NoColor = true
	forest := hierarchy.Forest{
		{ID: "1", Title: "Board of Trustees", Children: hierarchy.Forest{
			{ID: "2", Title: "Executive Director", Children: hierarchy.Forest{
				{ID: "3", Title: "Programs Director"},
			}},
		}},
		{ID: "4", Title: "Advisory Council"},
	}

	var collapsed bytes.Buffer
	printForest(&collapsed, forest, 0)
	assert.Equal(t, "▸ Board of Trustees\n  Advisory Council\n", collapsed.String())

	var expanded bytes.Buffer
	printForest(&expanded, hierarchy.SetAll(forest, true), 0)
	assert.Equal(t,
		"▾ Board of Trustees\n  ▾ Executive Director\n      Programs Director\n  Advisory Council\n",
		expanded.String())
}
