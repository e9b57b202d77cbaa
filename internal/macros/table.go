// Package macros provides the macro table: named shortcuts that expand into
// one or more canonical roll specifications before evaluation.
package macros

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/roll-cli/internal/errors"
	"github.com/KirkDiggler/roll-cli/internal/notation"
)

// Table maps macro names to ordered sequences of canonical roll
// specifications. It is populated once at startup and read-only afterwards;
// lookups hand out clones so the canonical specs are never shared.
type Table struct {
	entries map[string][]notation.Roll
}

// NewTable creates a table preloaded with the builtin macros:
//
//	adv    2d20h1  (advantage)
//	dis    2d20l1  (disadvantage)
//	stats  six 4d6h3 rolls (ability-score generation)
func NewTable() *Table {
	t := &Table{entries: make(map[string][]notation.Roll)}

	t.Define("adv", []notation.Roll{
		notation.NewRoll(2, 20, notation.KeepHighest(1)),
	})
	t.Define("dis", []notation.Roll{
		notation.NewRoll(2, 20, notation.KeepLowest(1)),
	})

	statRoll := notation.NewRoll(4, 6, notation.KeepHighest(3))
	stats := make([]notation.Roll, 6)
	for i := range stats {
		stats[i] = statRoll.Clone()
	}
	t.Define("stats", stats)

	return t
}

// Define registers a macro, replacing any existing definition with the same
// name.
func (t *Table) Define(name string, rolls []notation.Roll) {
	t.entries[name] = rolls
}

// Lookup returns clones of the macro's rolls, in stored order
func (t *Table) Lookup(name string) ([]notation.Roll, bool) {
	canonical, ok := t.entries[name]
	if !ok {
		return nil, false
	}

	rolls := make([]notation.Roll, len(canonical))
	for i, roll := range canonical {
		rolls[i] = roll.Clone()
	}
	return rolls, true
}

// Names returns the defined macro names sorted alphabetically
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve expands a token list into a flat ordered list of roll
// specifications. Each token is first looked up as a macro name; on a miss it
// is parsed as dice notation. The first invalid token aborts the whole batch
// with its error and no partial result.
func (t *Table) Resolve(tokens []string) ([]notation.Roll, error) {
	var rolls []notation.Roll
	for _, token := range tokens {
		if expansion, ok := t.Lookup(token); ok {
			rolls = append(rolls, expansion...)
			continue
		}

		roll, err := notation.Parse(token)
		if err != nil {
			return nil, err
		}
		rolls = append(rolls, *roll)
	}
	return rolls, nil
}

// Load reads line-oriented macro definitions: "<name> <token> <token> ...".
// Blank lines and lines starting with '#' are skipped. Each token resolves
// through the table as built so far, so a definition may reference builtins
// or macros defined on earlier lines. Any malformed line fails the load.
func (t *Table) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return errors.InvalidArgumentf("macro definition on line %d has no rolls", lineno)
		}

		rolls, err := t.Resolve(fields[1:])
		if err != nil {
			return errors.Wrapf(err, "failed to load macro %q on line %d", fields[0], lineno)
		}
		t.Define(fields[0], rolls)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read macro definitions")
	}
	return nil
}

// LoadFile loads macro definitions from a file, choosing the format by
// extension: .yaml/.yml parse as a YAML mapping, anything else as the
// line-oriented text format.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read macro file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return t.loadYAML(data)
	default:
		return t.Load(strings.NewReader(string(data)))
	}
}
