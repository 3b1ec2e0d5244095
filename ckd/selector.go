// SPDX-License-Identifier: MIT

package ckd

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Selector is a bin selection spec loaded from YAML configuration. It
// covers the same closed set of shapes SelectBins accepts from Go
// literals:
//
//	- "550"                                  # bare id
//	- [interval, {wmin: 500, wmax: 600}]     # [type, kwargs] pair
//	- {type: ids, filter_kwargs: {ids: [a]}} # explicit mapping
//
// A Selector carries the decoded spec verbatim; validation happens in
// SelectBins, where the shape is dispatched to a filter.
type Selector struct {
	spec any
}

// Spec returns the decoded selection spec.
func (s Selector) Spec() any { return s.spec }

// UnmarshalYAML decodes one selector node. Unsupported node kinds fail
// with ErrBadSelector immediately rather than at selection time.
func (s *Selector) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var id string
		if err := node.Decode(&id); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSelector, err)
		}
		s.spec = id
		return nil

	case yaml.SequenceNode:
		var pair []any
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSelector, err)
		}
		s.spec = pair
		return nil

	case yaml.MappingNode:
		var m map[string]any
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("%w: %v", ErrBadSelector, err)
		}
		s.spec = m
		return nil

	default:
		return fmt.Errorf("%w: unsupported YAML node kind %d", ErrBadSelector, node.Kind)
	}
}

// ParseSelectors reads a YAML list of selection specs and returns them
// in a shape directly consumable by SelectBins.
func ParseSelectors(r io.Reader) ([]any, error) {
	var selectors []Selector
	if err := yaml.NewDecoder(r).Decode(&selectors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSelector, err)
	}
	specs := make([]any, len(selectors))
	for i, sel := range selectors {
		specs[i] = sel.Spec()
	}
	return specs, nil
}
