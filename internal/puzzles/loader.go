package puzzles

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// BuiltinSetID names the set compiled into the binary.
const BuiltinSetID = "cyber-basics"

//go:embed builtin/*.yaml
var builtinFS embed.FS

type FSLoader struct{}

func NewLoader() *FSLoader { return &FSLoader{} }

// LoadSets reads every *.yaml/*.yml file directly under root. Sets are sorted
// by id; two files declaring the same id is an error.
func (l *FSLoader) LoadSets(ctx context.Context, root string) ([]Set, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0)
	seen := map[string]string{}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		set, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[set.SetID]; ok {
			return nil, fmt.Errorf("duplicate set_id %q in %s and %s", set.SetID, prev, path)
		}
		seen[set.SetID] = path
		sets = append(sets, set)
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].SetID < sets[j].SetID })
	return sets, nil
}

func (l *FSLoader) LoadFile(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	set, err := parseSet(path, b)
	if err != nil {
		return Set{}, err
	}
	set.Path = path
	return set, nil
}

func (l *FSLoader) Builtin() (Set, error) {
	name := "builtin/" + BuiltinSetID + ".yaml"
	b, err := builtinFS.ReadFile(name)
	if err != nil {
		return Set{}, err
	}
	set, err := parseSet(name, b)
	if err != nil {
		return Set{}, err
	}
	set.Path = "builtin:" + BuiltinSetID
	return set, nil
}

func (l *FSLoader) FindSet(sets []Set, setID string) (Set, error) {
	for _, s := range sets {
		if s.SetID == setID {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("puzzle set %s not found", setID)
}

func parseSet(name string, b []byte) (Set, error) {
	var set Set
	if err := yaml.Unmarshal(b, &set); err != nil {
		return set, fmt.Errorf("%w: parse %s: %w", ErrInvalidSet, name, err)
	}
	if err := set.Validate(); err != nil {
		return set, fmt.Errorf("validate %s: %w", name, err)
	}
	return set, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
