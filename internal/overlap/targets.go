package overlap

import (
	"encoding/json"

	"github.com/roach88/muonid/internal/detid"
)

// MaxTargets is the most GEM chambers a single CSC chamber can overlap.
const MaxTargets = 2

// Targets is an ordered sequence of at most MaxTargets GEM identifiers.
// The zero value is empty.
type Targets struct {
	ids [MaxTargets]detid.Raw
	n   int
}

// Len returns the number of identifiers.
func (t Targets) Len() int { return t.n }

// Empty reports whether there is no overlapping chamber.
func (t Targets) Empty() bool { return t.n == 0 }

// At returns the i-th identifier. It panics if i is out of range.
func (t Targets) At(i int) detid.Raw {
	if i < 0 || i >= t.n {
		panic("overlap: Targets index out of range")
	}
	return t.ids[i]
}

// Slice returns the identifiers as a new slice.
func (t Targets) Slice() []detid.Raw {
	return append([]detid.Raw(nil), t.ids[:t.n]...)
}

// MarshalJSON encodes the identifiers as a JSON array, never null.
func (t Targets) MarshalJSON() ([]byte, error) {
	return json.Marshal(append([]detid.Raw{}, t.ids[:t.n]...))
}

func (t *Targets) push(r detid.Raw) {
	t.ids[t.n] = r
	t.n++
}
