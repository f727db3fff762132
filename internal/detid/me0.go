package detid

// ME0 field layout (low bits to high):
//
//	 0-4:  roll (0-16)
//	 5-10: chamber (0-18)
//	11-13: layer (0-6)
//	14-15: region + 1 (region is -1 or +1)
var (
	me0Roll    = field{shift: 0, width: 5}
	me0Chamber = field{shift: 5, width: 6}
	me0Layer   = field{shift: 11, width: 3}
	me0Region  = field{shift: 14, width: 2, offset: 1}
)

// me0Layout lists every field of the ME0 layout.
var me0Layout = []field{me0Roll, me0Chamber, me0Layer, me0Region}

const (
	MaxME0Roll    = 16
	MaxME0Chamber = 18
	MaxME0Layer   = 6
)

var (
	me0RollBounds    = bounds{"roll", 0, MaxME0Roll}
	me0ChamberBounds = bounds{"chamber", 0, MaxME0Chamber}
	me0LayerBounds   = bounds{"layer", 0, MaxME0Layer}
)

// ME0 is a decoded early-generation GEM identifier.
type ME0 struct {
	Region  int `json:"region"`
	Layer   int `json:"layer"`
	Chamber int `json:"chamber"`
	Roll    int `json:"roll"`
}

func (m ME0) Validate() error {
	if err := checkEndcapRegion(SubsystemME0, m.Region); err != nil {
		return err
	}
	if err := me0LayerBounds.check(SubsystemME0, m.Layer); err != nil {
		return err
	}
	if err := me0ChamberBounds.check(SubsystemME0, m.Chamber); err != nil {
		return err
	}
	return me0RollBounds.check(SubsystemME0, m.Roll)
}

func (m ME0) Pack() (Raw, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	r := header(SubsystemME0)
	r = me0Roll.putInt(r, m.Roll)
	r = me0Chamber.putInt(r, m.Chamber)
	r = me0Layer.putInt(r, m.Layer)
	r = me0Region.putInt(r, m.Region)
	return r, nil
}

func DecodeME0(r Raw) (ME0, error) {
	if err := expect(r, SubsystemME0, me0Layout...); err != nil {
		return ME0{}, err
	}
	m := ME0{
		Region:  me0Region.getInt(r),
		Layer:   me0Layer.getInt(r),
		Chamber: me0Chamber.getInt(r),
		Roll:    me0Roll.getInt(r),
	}
	return m, m.Validate()
}
