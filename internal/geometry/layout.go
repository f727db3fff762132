package geometry

import (
	"fmt"
	"strings"

	"github.com/roach88/muonid/internal/detid"
)

// RingRef names one ring of a subsystem.
type RingRef struct {
	Station int `json:"station" yaml:"station"`
	Ring    int `json:"ring" yaml:"ring"`
}

func (r RingRef) String() string {
	return fmt.Sprintf("%d/%d", r.Station, r.Ring)
}

// RingCount is the number of chambers in one ring.
type RingCount struct {
	Station  int `json:"station" yaml:"station"`
	Ring     int `json:"ring" yaml:"ring"`
	Chambers int `json:"chambers" yaml:"chambers"`
}

// Ref returns the ring the count belongs to.
func (c RingCount) Ref() RingRef {
	return RingRef{Station: c.Station, Ring: c.Ring}
}

// Overlap declares that a CSC ring is covered by a GEM ring.
type Overlap struct {
	CSC RingRef `json:"csc" yaml:"csc"`
	GEM RingRef `json:"gem" yaml:"gem"`
}

// Layout is the full chamber-count configuration.
type Layout struct {
	Name     string      `json:"name" yaml:"name"`
	CSC      []RingCount `json:"csc" yaml:"csc"`
	GEM      []RingCount `json:"gem" yaml:"gem"`
	Overlaps []Overlap   `json:"overlaps" yaml:"overlaps"`
}

// DefaultName is the name of the built-in layout.
const DefaultName = "ge11-ge21"

// Default returns a fresh copy of the built-in layout. ME1/1 and ME2/2
// match their GEM rings one to one; each 20 degree ME2/1 chamber spans
// two 10 degree GE2/1 long chambers.
func Default() *Layout {
	return &Layout{
		Name: DefaultName,
		CSC: []RingCount{
			{Station: 1, Ring: 1, Chambers: 36},
			{Station: 1, Ring: 2, Chambers: 36},
			{Station: 1, Ring: 3, Chambers: 36},
			{Station: 1, Ring: detid.RingME1a, Chambers: 36},
			{Station: 2, Ring: 1, Chambers: 18},
			{Station: 2, Ring: 2, Chambers: 36},
			{Station: 3, Ring: 1, Chambers: 18},
			{Station: 3, Ring: 2, Chambers: 36},
			{Station: 4, Ring: 1, Chambers: 18},
			{Station: 4, Ring: 2, Chambers: 36},
		},
		GEM: []RingCount{
			{Station: 1, Ring: detid.GEMRingLong, Chambers: 36},
			{Station: 2, Ring: detid.GEMRingLong, Chambers: 36},
			{Station: 2, Ring: detid.GEMRingShort, Chambers: 36},
		},
		Overlaps: []Overlap{
			{CSC: RingRef{Station: 1, Ring: 1}, GEM: RingRef{Station: 1, Ring: detid.GEMRingLong}},
			{CSC: RingRef{Station: 2, Ring: 1}, GEM: RingRef{Station: 2, Ring: detid.GEMRingLong}},
			{CSC: RingRef{Station: 2, Ring: 2}, GEM: RingRef{Station: 2, Ring: detid.GEMRingShort}},
		},
	}
}

// Clone returns a deep copy of l.
func (l *Layout) Clone() *Layout {
	out := &Layout{Name: l.Name}
	out.CSC = append([]RingCount(nil), l.CSC...)
	out.GEM = append([]RingCount(nil), l.GEM...)
	out.Overlaps = append([]Overlap(nil), l.Overlaps...)
	return out
}

// CSCChambers returns the chamber count of a CSC ring.
func (l *Layout) CSCChambers(ref RingRef) (int, bool) {
	return findCount(l.CSC, ref)
}

// GEMChambers returns the chamber count of a GEM ring.
func (l *Layout) GEMChambers(ref RingRef) (int, bool) {
	return findCount(l.GEM, ref)
}

func findCount(counts []RingCount, ref RingRef) (int, bool) {
	for _, c := range counts {
		if c.Ref() == ref {
			return c.Chambers, true
		}
	}
	return 0, false
}

// Span returns the first and last chamber of a ring of to chambers that
// the azimuthal footprint of chamber c of a ring of from chambers touches.
// Chamber c covers [(c-1)/from, c/from) of the ring, so the result never
// wraps past the last chamber.
func Span(c, from, to int) (first, last int) {
	first = (c-1)*to/from + 1
	last = (c*to + from - 1) / from
	return first, last
}

// Check validates l semantically and returns every problem found.
func (l *Layout) Check() error {
	var errs ValidationErrors

	if strings.TrimSpace(l.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Code: ErrLayoutNameEmpty, Message: "name is required"})
	}

	errs = append(errs, checkCounts("csc", l.CSC, func(rc RingCount) (int, int, int) {
		return detid.MaxCSCStation, detid.MaxCSCRing(rc.Station), detid.MaxCSCChamber
	})...)
	errs = append(errs, checkCounts("gem", l.GEM, func(RingCount) (int, int, int) {
		return detid.MaxGEMStation, detid.GEMRingShort, detid.MaxGEMChamber
	})...)

	if len(l.Overlaps) == 0 {
		errs = append(errs, ValidationError{Field: "overlaps", Code: ErrOverlapMissing, Message: "at least one overlap is required"})
	}

	sources := map[RingRef]bool{}
	for i, o := range l.Overlaps {
		field := fmt.Sprintf("overlaps[%d]", i)
		if sources[o.CSC] {
			errs = append(errs, ValidationError{Field: field, Code: ErrDuplicateRing, Message: fmt.Sprintf("csc ring %s already has an overlap", o.CSC)})
			continue
		}
		sources[o.CSC] = true

		from, ok := l.CSCChambers(o.CSC)
		if !ok {
			errs = append(errs, ValidationError{Field: field + ".csc", Code: ErrUnknownRing, Message: fmt.Sprintf("csc ring %s has no chamber count", o.CSC)})
			continue
		}
		to, ok := l.GEMChambers(o.GEM)
		if !ok {
			errs = append(errs, ValidationError{Field: field + ".gem", Code: ErrUnknownRing, Message: fmt.Sprintf("gem ring %s has no chamber count", o.GEM)})
			continue
		}
		for c := 1; c <= from; c++ {
			first, last := Span(c, from, to)
			if last-first > 1 {
				errs = append(errs, ValidationError{
					Field:   field,
					Code:    ErrSpanTooWide,
					Message: fmt.Sprintf("csc chamber %d of %d spans gem chambers %d-%d of %d", c, from, first, last, to),
				})
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// limits returns the maximum station, ring and chamber for a ring count.
type limits func(RingCount) (maxStation, maxRing, maxChambers int)

func checkCounts(name string, counts []RingCount, lim limits) ValidationErrors {
	var errs ValidationErrors
	seen := map[RingRef]bool{}
	for i, rc := range counts {
		field := fmt.Sprintf("%s[%d]", name, i)
		maxStation, maxRing, maxChambers := lim(rc)
		switch {
		case rc.Station < 1 || rc.Station > maxStation:
			errs = append(errs, ValidationError{Field: field + ".station", Code: ErrRingOutOfRange, Message: fmt.Sprintf("station %d outside [1, %d]", rc.Station, maxStation)})
		case rc.Ring < 1 || rc.Ring > maxRing:
			errs = append(errs, ValidationError{Field: field + ".ring", Code: ErrRingOutOfRange, Message: fmt.Sprintf("ring %d outside [1, %d] for station %d", rc.Ring, maxRing, rc.Station)})
		case rc.Chambers < 1 || rc.Chambers > maxChambers:
			errs = append(errs, ValidationError{Field: field + ".chambers", Code: ErrRingOutOfRange, Message: fmt.Sprintf("chambers %d outside [1, %d]", rc.Chambers, maxChambers)})
		case seen[rc.Ref()]:
			errs = append(errs, ValidationError{Field: field, Code: ErrDuplicateRing, Message: fmt.Sprintf("ring %s listed twice", rc.Ref())})
		}
		seen[rc.Ref()] = true
	}
	return errs
}
