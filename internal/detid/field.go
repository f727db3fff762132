package detid

// field is one bit range of a Raw identifier. offset is added on put and
// subtracted on get so signed values can be stored unsigned.
type field struct {
	shift  uint
	width  uint
	offset int
}

func (f field) mask() uint32 {
	return (1 << f.width) - 1
}

// bits returns the positions f occupies in a Raw.
func (f field) bits() uint32 {
	return f.mask() << f.shift
}

func (f field) get(r Raw) uint32 {
	return (uint32(r) >> f.shift) & f.mask()
}

func (f field) put(r Raw, v uint32) Raw {
	cleared := uint32(r) &^ f.bits()
	return Raw(cleared | (v&f.mask())<<f.shift)
}

func (f field) getInt(r Raw) int {
	return int(f.get(r)) - f.offset
}

func (f field) putInt(r Raw, v int) Raw {
	return f.put(r, uint32(v+f.offset))
}

// bounds is the inclusive valid range of one named field.
type bounds struct {
	name     string
	min, max int
}

func (b bounds) check(s Subsystem, v int) error {
	if v < b.min || v > b.max {
		return invalidField(s, b.name, v, b.min, b.max)
	}
	return nil
}
