package persistence

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
)

//go:embed data/organization.yaml
var defaultStructure embed.FS

const defaultStructureFile = "data/organization.yaml"

// EmbeddedStructureLoader reads the organization structure from the embedded
// default or, when path is set, from a YAML or JSON file on disk.
type EmbeddedStructureLoader struct {
	path string
}

func NewEmbeddedStructureLoader(path string) *EmbeddedStructureLoader {
	return &EmbeddedStructureLoader{path: strings.TrimSpace(path)}
}

func (l *EmbeddedStructureLoader) Load(ctx context.Context) (hierarchy.Forest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		data []byte
		name string
		err  error
	)
	if l.path == "" {
		name = defaultStructureFile
		data, err = defaultStructure.ReadFile(defaultStructureFile)
	} else {
		name = l.path
		data, err = os.ReadFile(l.path)
	}
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to read organization structure %s", name))
	}
	forest, err := DecodeStructure(name, data)
	if err != nil {
		return nil, err
	}
	return forest, nil
}

// DecodeStructure parses a forest by file extension (.json, otherwise YAML).
// Flags present in the file are kept; absent ones default to collapsed.
// Fields other than id, title, expanded and children are ignored.
func DecodeStructure(name string, data []byte) (hierarchy.Forest, error) {
	var forest hierarchy.Forest
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(data, &forest); err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("failed to decode %s", name))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &forest); err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("failed to decode %s", name))
		}
	default:
		return nil, errors.Errorf("unsupported organization structure format %q", filepath.Ext(name))
	}
	if err := hierarchy.Validate(forest); err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("invalid organization structure %s", name))
	}
	return forest, nil
}
