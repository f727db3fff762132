package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/muonid/internal/detid"
)

// namedField binds a command-line field name to a field of a decoded id.
type namedField struct {
	name string
	ptr  *int
}

// record is a decoded or to-be-encoded identifier of any subsystem.
type record struct {
	subsystem detid.Subsystem
	value     any // pointer to the detid struct, for JSON output
	fields    []namedField
	pack      func() (detid.Raw, error)
}

func newRecord(s detid.Subsystem) (*record, error) {
	switch s {
	case detid.SubsystemCSC:
		id := &detid.CSC{}
		return &record{s, id, []namedField{
			{"endcap", &id.Endcap}, {"station", &id.Station}, {"ring", &id.Ring},
			{"chamber", &id.Chamber}, {"layer", &id.Layer},
		}, func() (detid.Raw, error) { return id.Pack() }}, nil
	case detid.SubsystemGEM:
		id := &detid.GEM{}
		return &record{s, id, []namedField{
			{"region", &id.Region}, {"station", &id.Station}, {"ring", &id.Ring},
			{"layer", &id.Layer}, {"chamber", &id.Chamber}, {"roll", &id.Roll},
		}, func() (detid.Raw, error) { return id.Pack() }}, nil
	case detid.SubsystemRPC:
		id := &detid.RPC{}
		return &record{s, id, []namedField{
			{"region", &id.Region}, {"ring", &id.Ring}, {"station", &id.Station},
			{"sector", &id.Sector}, {"layer", &id.Layer}, {"roll", &id.Roll},
		}, func() (detid.Raw, error) { return id.Pack() }}, nil
	case detid.SubsystemDT:
		id := &detid.DT{}
		return &record{s, id, []namedField{
			{"wheel", &id.Wheel}, {"station", &id.Station}, {"sector", &id.Sector},
			{"superlayer", &id.SuperLayer}, {"layer", &id.Layer},
		}, func() (detid.Raw, error) { return id.Pack() }}, nil
	case detid.SubsystemME0:
		id := &detid.ME0{}
		return &record{s, id, []namedField{
			{"region", &id.Region}, {"layer", &id.Layer}, {"chamber", &id.Chamber}, {"roll", &id.Roll},
		}, func() (detid.Raw, error) { return id.Pack() }}, nil
	default:
		return nil, &parseError{err: fmt.Errorf("unsupported subsystem %s", s)}
	}
}

// decodeRecord decodes r into a record of its own subsystem.
func decodeRecord(r detid.Raw) (*record, error) {
	rec, err := newRecord(r.Subsystem())
	if err != nil {
		return nil, &detid.GeometryError{
			Code:    detid.ErrCodeMalformed,
			Message: fmt.Sprintf("%s is not a muon detector id", r),
		}
	}

	switch id := rec.value.(type) {
	case *detid.CSC:
		*id, err = detid.DecodeCSC(r)
	case *detid.GEM:
		*id, err = detid.DecodeGEM(r)
	case *detid.RPC:
		*id, err = detid.DecodeRPC(r)
	case *detid.DT:
		*id, err = detid.DecodeDT(r)
	case *detid.ME0:
		*id, err = detid.DecodeME0(r)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// assign copies values into the record, rejecting unknown names.
func (r *record) assign(values map[string]int) error {
	known := make(map[string]*int, len(r.fields))
	for _, f := range r.fields {
		known[f.name] = f.ptr
	}
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ptr, ok := known[name]
		if !ok {
			return &parseError{err: fmt.Errorf("%s has no field %q (fields: %s)", r.subsystem, name, r.fieldNames())}
		}
		*ptr = values[name]
	}
	return nil
}

func (r *record) fieldNames() string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return strings.Join(names, ", ")
}

// String renders "endcap=1 station=1 ring=1 ...".
func (r *record) String() string {
	parts := make([]string, len(r.fields))
	for i, f := range r.fields {
		parts[i] = fmt.Sprintf("%s=%d", f.name, *f.ptr)
	}
	return strings.Join(parts, " ")
}
