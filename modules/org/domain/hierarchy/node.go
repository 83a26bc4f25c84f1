package hierarchy

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyNodeID     = errors.New("hierarchy: node id is empty")
	ErrDuplicateNodeID = errors.New("hierarchy: duplicate node id")
)

// NodeID is the stable key of a node. Loaders may supply it as a string or a number.
type NodeID string

func (id NodeID) String() string {
	return string(id)
}

func (id *NodeID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = NodeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("hierarchy: node id must be a string or a number, got %s", string(data))
	}
	v, err := numericID(n.String())
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id *NodeID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("hierarchy: node id must be a scalar (line %d)", value.Line)
	}
	switch value.Tag {
	case "!!int":
		i, err := strconv.ParseInt(strings.ReplaceAll(value.Value, "_", ""), 0, 64)
		if err != nil {
			return fmt.Errorf("hierarchy: node id %q (line %d): %w", value.Value, value.Line, err)
		}
		*id = NodeID(strconv.FormatInt(i, 10))
	case "!!float":
		v, err := numericID(value.Value)
		if err != nil {
			return fmt.Errorf("hierarchy: node id %q (line %d): %w", value.Value, value.Line, err)
		}
		*id = v
	default:
		*id = NodeID(value.Value)
	}
	return nil
}

// numericID renders a number in its shortest decimal form, so 1, 1.0 and 1e0
// all become "1".
func numericID(raw string) (NodeID, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", err
	}
	return NodeID(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

type Node struct {
	ID       NodeID `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Expanded bool   `json:"expanded" yaml:"expanded"`
	Children Forest `json:"children" yaml:"children"`
}

// HasChildren reports whether the node may be rendered as expandable.
func (n Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Forest is the ordered list of root nodes.
type Forest []Node

// Validate checks that every id is non-empty and unique across all levels.
func Validate(f Forest) error {
	seen := make(map[NodeID]struct{})
	var err error
	Walk(f, func(n Node, _ int, _ *Node) bool {
		if strings.TrimSpace(string(n.ID)) == "" {
			err = fmt.Errorf("%w (title %q)", ErrEmptyNodeID, n.Title)
			return false
		}
		if _, ok := seen[n.ID]; ok {
			err = fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
			return false
		}
		seen[n.ID] = struct{}{}
		return true
	})
	return err
}

// Walk visits nodes depth-first in order. fn receives the nesting level and
// the parent (nil for roots); returning false stops the walk.
func Walk(f Forest, fn func(n Node, level int, parent *Node) bool) {
	walk(f, 0, nil, fn)
}

func walk(f Forest, level int, parent *Node, fn func(Node, int, *Node) bool) bool {
	for i := range f {
		if !fn(f[i], level, parent) {
			return false
		}
		if !walk(f[i].Children, level+1, &f[i], fn) {
			return false
		}
	}
	return true
}

func Find(f Forest, id NodeID) (Node, bool) {
	var found Node
	var ok bool
	Walk(f, func(n Node, _ int, _ *Node) bool {
		if n.ID == id {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}

// IDs lists every node id in depth-first order.
func IDs(f Forest) []NodeID {
	var ids []NodeID
	Walk(f, func(n Node, _ int, _ *Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	return ids
}

// Count returns the number of nodes in the forest.
func Count(f Forest) int {
	total := 0
	for _, n := range f {
		total += 1 + Count(n.Children)
	}
	return total
}

// SetAll returns a copy of the forest with every expanded flag set to expanded.
func SetAll(f Forest, expanded bool) Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, n := range f {
		n.Expanded = expanded
		n.Children = SetAll(n.Children, expanded)
		out[i] = n
	}
	return out
}

// CollapseAll is the initial state handed out when a view is opened.
func CollapseAll(f Forest) Forest {
	return SetAll(f, false)
}

// Clone deep-copies the forest.
func Clone(f Forest) Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, n := range f {
		n.Children = Clone(n.Children)
		out[i] = n
	}
	return out
}
