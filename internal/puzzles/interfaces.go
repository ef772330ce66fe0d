package puzzles

import "context"

type Loader interface {
	LoadSets(ctx context.Context, root string) ([]Set, error)
	LoadFile(path string) (Set, error)
	Builtin() (Set, error)
	FindSet(sets []Set, setID string) (Set, error)
}
