package pagespec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML converts a YAML node into a Spec. Integers become single pages,
// strings are handled by Parse and sequences become groups.
func FromYAML(node *yaml.Node) (Spec, error) {
	if node == nil {
		return nil, &TypeError{Kind: "empty value"}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, &TypeError{Kind: "empty document"}
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int":
			var page int
			if err := node.Decode(&page); err != nil {
				return nil, &NumberError{Text: node.Value, Err: err}
			}
			return Single{Page: page}, nil
		case "!!str":
			return Parse(node.Value)
		default:
			return nil, &TypeError{Kind: node.ShortTag()}
		}
	case yaml.SequenceNode:
		group := Group{Items: make([]Spec, 0, len(node.Content))}
		for i, child := range node.Content {
			item, err := FromYAML(child)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i+1, err)
			}
			group.Items = append(group.Items, item)
		}
		return group, nil
	case yaml.MappingNode:
		return nil, &TypeError{Kind: "!!map"}
	default:
		return nil, &TypeError{Kind: fmt.Sprintf("yaml node kind %d", node.Kind)}
	}
}

