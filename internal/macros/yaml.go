package macros

import (
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/roll-cli/internal/errors"
)

// loadYAML parses a YAML mapping of macro name to token list:
//
//	sneak: [d20, 2d6+3]
//	hero:  [adv, stats]
//
// Decoding goes through a yaml.Node so definitions resolve in document
// order, matching the text format's earlier-lines-first semantics.
func (t *Table) loadYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "failed to parse macro file as YAML")
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return errors.InvalidArgument("macro file must be a mapping of name to token list")
	}

	// Mapping nodes store key/value pairs as adjacent entries.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]

		var tokens []string
		if err := value.Decode(&tokens); err != nil {
			return errors.Wrapf(err, "macro %q must map to a list of tokens", key.Value)
		}
		if len(tokens) == 0 {
			return errors.InvalidArgumentf("macro %q has no rolls", key.Value)
		}

		rolls, err := t.Resolve(tokens)
		if err != nil {
			return errors.Wrapf(err, "failed to load macro %q", key.Value)
		}
		t.Define(key.Value, rolls)
	}
	return nil
}
