package overlap

import (
	"fmt"

	"github.com/roach88/muonid/internal/detid"
	"github.com/roach88/muonid/internal/geometry"
)

// rule is one indexed overlap: the GEM ring and both chamber counts.
type rule struct {
	gem         geometry.RingRef
	cscChambers int
	gemChambers int
}

// Resolver maps CSC identifiers to overlapping GEM identifiers.
type Resolver struct {
	name  string
	rules map[geometry.RingRef]rule
}

// NewResolver checks and indexes a layout. The layout is copied; later
// changes to it do not affect the resolver.
func NewResolver(l *geometry.Layout) (*Resolver, error) {
	if l == nil {
		return nil, fmt.Errorf("new resolver: nil layout")
	}
	if err := l.Check(); err != nil {
		return nil, fmt.Errorf("new resolver: invalid layout %q: %w", l.Name, err)
	}

	r := &Resolver{
		name:  l.Name,
		rules: make(map[geometry.RingRef]rule, len(l.Overlaps)),
	}
	for _, o := range l.Overlaps {
		from, _ := l.CSCChambers(o.CSC)
		to, _ := l.GEMChambers(o.GEM)
		r.rules[o.CSC] = rule{gem: o.GEM, cscChambers: from, gemChambers: to}
	}
	return r, nil
}

// Default returns a resolver over geometry.Default.
func Default() *Resolver {
	r, err := NewResolver(geometry.Default())
	if err != nil {
		panic(fmt.Sprintf("overlap: built-in layout is invalid: %v", err))
	}
	return r
}

// LayoutName returns the name of the layout the resolver was built from.
func (r *Resolver) LayoutName() string {
	return r.name
}

// Covers reports whether a CSC ring has GEM coverage.
func (r *Resolver) Covers(station, ring int) bool {
	_, ok := r.rules[geometry.RingRef{Station: station, Ring: ring}]
	return ok
}

// Correspond returns the GEM chambers overlapping the CSC chamber src,
// with the given GEM layer (0 for the superchamber).
func (r *Resolver) Correspond(src detid.Raw, layer int) (Targets, error) {
	csc, err := detid.DecodeCSC(src)
	if err != nil {
		return Targets{}, err
	}
	return r.CorrespondCSC(csc, layer)
}

// CorrespondCSC is Correspond for an already decoded identifier.
func (r *Resolver) CorrespondCSC(src detid.CSC, layer int) (Targets, error) {
	if err := src.Validate(); err != nil {
		return Targets{}, err
	}
	if layer < 0 || layer > detid.MaxGEMLayer {
		return Targets{}, detid.NewInvalidGeometry(detid.SubsystemGEM, "layer", layer,
			fmt.Sprintf("must be in [0, %d]", detid.MaxGEMLayer))
	}

	ru, ok := r.rules[geometry.RingRef{Station: src.Station, Ring: src.Ring}]
	if !ok {
		return Targets{}, nil
	}
	if src.Chamber < 1 || src.Chamber > ru.cscChambers {
		return Targets{}, detid.NewInvalidGeometry(detid.SubsystemCSC, "chamber", src.Chamber,
			fmt.Sprintf("ME%d/%d has chambers 1-%d", src.Station, src.Ring, ru.cscChambers))
	}

	first, last := geometry.Span(src.Chamber, ru.cscChambers, ru.gemChambers)
	var out Targets
	for ch := first; ch <= last; ch++ {
		id, err := detid.GEM{
			Region:  src.ZEndcap(),
			Station: ru.gem.Station,
			Ring:    ru.gem.Ring,
			Layer:   layer,
			Chamber: ch,
		}.Pack()
		if err != nil {
			return Targets{}, err
		}
		out.push(id)
	}
	return out, nil
}

// LayerPair returns the overlapping GEM chambers on layer 1 and layer 2.
func (r *Resolver) LayerPair(src detid.Raw) ([2]Targets, error) {
	var pair [2]Targets
	for i := range pair {
		t, err := r.Correspond(src, i+1)
		if err != nil {
			return [2]Targets{}, err
		}
		pair[i] = t
	}
	return pair, nil
}

var builtin = Default()

// Correspond resolves src against the built-in layout.
func Correspond(src detid.Raw, layer int) (Targets, error) {
	return builtin.Correspond(src, layer)
}
