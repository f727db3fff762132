package geometry

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// DomainLayout prefixes the fingerprint hash input.
const DomainLayout = "muonid/layout/v1"

// Fingerprint returns a content hash of l that is stable across field
// order in the source file: SHA256(domain + 0x00 + canonical JSON).
func (l *Layout) Fingerprint() (string, error) {
	canonical, err := marshalCanonical(l.canonicalMap())
	if err != nil {
		return "", fmt.Errorf("fingerprint: failed to marshal: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainLayout))
	h.Write([]byte{0x00})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// canonicalMap sorts ring lists so that reordering entries in a file does
// not change the fingerprint.
func (l *Layout) canonicalMap() map[string]any {
	counts := func(in []RingCount) []any {
		sorted := append([]RingCount(nil), in...)
		sort.Slice(sorted, func(i, j int) bool {
			return refLess(sorted[i].Ref(), sorted[j].Ref())
		})
		out := make([]any, len(sorted))
		for i, c := range sorted {
			out[i] = map[string]any{"station": c.Station, "ring": c.Ring, "chambers": c.Chambers}
		}
		return out
	}

	overlaps := append([]Overlap(nil), l.Overlaps...)
	sort.Slice(overlaps, func(i, j int) bool {
		return refLess(overlaps[i].CSC, overlaps[j].CSC)
	})
	ov := make([]any, len(overlaps))
	for i, o := range overlaps {
		ov[i] = map[string]any{
			"csc": map[string]any{"station": o.CSC.Station, "ring": o.CSC.Ring},
			"gem": map[string]any{"station": o.GEM.Station, "ring": o.GEM.Ring},
		}
	}

	return map[string]any{
		"name":     l.Name,
		"csc":      counts(l.CSC),
		"gem":      counts(l.GEM),
		"overlaps": ov,
	}
}

func refLess(a, b RingRef) bool {
	if a.Station != b.Station {
		return a.Station < b.Station
	}
	return a.Ring < b.Ring
}

// marshalCanonical writes sorted-key JSON with NFC-normalised strings and
// no HTML escaping. Only the types canonicalMap produces are supported.
func marshalCanonical(v any) ([]byte, error) {
	switch val := v.(type) {
	case string:
		return marshalCanonicalString(val)
	case int:
		return []byte(strconv.Itoa(val)), nil
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := marshalCanonical(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := marshalCanonicalString(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			vb, err := marshalCanonical(val[k])
			if err != nil {
				return nil, fmt.Errorf("value for key %q: %w", k, err)
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

func marshalCanonicalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
