package sweeper

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Rand is the source of uniform random integers used for placement and
// difficulty draws. *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// BombSet is the set of cell indices holding bombs.
type BombSet struct {
	set mapset.Set[int]
}

// NewBombSet builds a set from explicit indices.
// Duplicates collapse; indices are not range-checked here.
func NewBombSet(indices ...int) BombSet {
	s := mapset.New[int]()
	for _, idx := range indices {
		s.Put(idx)
	}
	return BombSet{set: s}
}

// PlaceBombs draws totalBombs distinct indices uniformly from [1, totalCells].
// Uses a partial Fisher-Yates shuffle so it always terminates in O(totalCells).
func PlaceBombs(rng Rand, totalCells, totalBombs int) (BombSet, error) {
	if totalBombs < 0 || totalBombs >= totalCells {
		return BombSet{}, fmt.Errorf("%d bombs for %d cells: %w", totalBombs, totalCells, ErrInvalidConfig)
	}

	pool := make([]int, totalCells)
	for i := range pool {
		pool[i] = i + 1
	}

	set := mapset.New[int]()
	for i := 0; i < totalBombs; i++ {
		j := i + rng.Intn(totalCells-i)
		pool[i], pool[j] = pool[j], pool[i]
		set.Put(pool[i])
	}

	return BombSet{set: set}, nil
}

// Has reports whether index holds a bomb.
func (b BombSet) Has(index int) bool {
	return b.set.Has(index)
}

// Len returns the number of bombs.
func (b BombSet) Len() int {
	return b.set.Size()
}

// Indices returns the bomb indices in ascending order.
func (b BombSet) Indices() []int {
	out := make([]int, 0, b.Len())
	b.set.Each(func(idx int) {
		out = append(out, idx)
	})
	sort.Ints(out)
	return out
}

// within reports whether every index lies in [1, totalCells].
func (b BombSet) within(totalCells int) bool {
	ok := true
	b.set.Each(func(idx int) {
		if idx < 1 || idx > totalCells {
			ok = false
		}
	})
	return ok
}
