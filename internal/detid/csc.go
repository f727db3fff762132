package detid

// CSC field layout (low bits to high):
//
//	 0-2:  layer (0-6)
//	 3-8:  chamber (0-36)
//	 9-11: ring (0-4, ring 4 is the ME1/a partition of station 1)
//	12-14: station (0-4)
//	15-16: endcap (1 = +z, 2 = -z)
var (
	cscLayer   = field{shift: 0, width: 3}
	cscChamber = field{shift: 3, width: 6}
	cscRing    = field{shift: 9, width: 3}
	cscStation = field{shift: 12, width: 3}
	cscEndcap  = field{shift: 15, width: 2}
)

// cscLayout lists every field of the CSC layout.
var cscLayout = []field{cscLayer, cscChamber, cscRing, cscStation, cscEndcap}

const (
	// EndcapPlus and EndcapMinus are the CSC endcap field values.
	EndcapPlus  = 1
	EndcapMinus = 2

	MaxCSCLayer   = 6
	MaxCSCChamber = 36
	MaxCSCStation = 4

	// RingME1a is the extended ring index of the ME1/a partition.
	RingME1a = 4
)

var (
	cscEndcapBounds  = bounds{"endcap", EndcapPlus, EndcapMinus}
	cscStationBounds = bounds{"station", 0, MaxCSCStation}
	cscChamberBounds = bounds{"chamber", 0, MaxCSCChamber}
	cscLayerBounds   = bounds{"layer", 0, MaxCSCLayer}
)

// CSC is a decoded cathode strip chamber identifier.
type CSC struct {
	Endcap  int `json:"endcap"`
	Station int `json:"station"`
	Ring    int `json:"ring"`
	Chamber int `json:"chamber"`
	Layer   int `json:"layer"`
}

// ZEndcap returns +1 for the positive endcap and -1 for the negative one.
func (c CSC) ZEndcap() int {
	if c.Endcap == EndcapMinus {
		return -1
	}
	return 1
}

// MaxCSCRing returns the highest ring index defined for a station.
func MaxCSCRing(station int) int {
	switch station {
	case 0:
		return 0
	case 1:
		return RingME1a
	default:
		return 2
	}
}

// Validate checks every field against the CSC domain.
func (c CSC) Validate() error {
	if err := cscEndcapBounds.check(SubsystemCSC, c.Endcap); err != nil {
		return err
	}
	if err := cscStationBounds.check(SubsystemCSC, c.Station); err != nil {
		return err
	}
	if err := (bounds{"ring", 0, MaxCSCRing(c.Station)}).check(SubsystemCSC, c.Ring); err != nil {
		return err
	}
	if err := cscChamberBounds.check(SubsystemCSC, c.Chamber); err != nil {
		return err
	}
	return cscLayerBounds.check(SubsystemCSC, c.Layer)
}

// Pack encodes c after validating it.
func (c CSC) Pack() (Raw, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	r := header(SubsystemCSC)
	r = cscLayer.putInt(r, c.Layer)
	r = cscChamber.putInt(r, c.Chamber)
	r = cscRing.putInt(r, c.Ring)
	r = cscStation.putInt(r, c.Station)
	r = cscEndcap.putInt(r, c.Endcap)
	return r, nil
}

// DecodeCSC unpacks a CSC identifier and validates its fields.
func DecodeCSC(r Raw) (CSC, error) {
	if err := expect(r, SubsystemCSC, cscLayout...); err != nil {
		return CSC{}, err
	}
	c := CSC{
		Endcap:  cscEndcap.getInt(r),
		Station: cscStation.getInt(r),
		Ring:    cscRing.getInt(r),
		Chamber: cscChamber.getInt(r),
		Layer:   cscLayer.getInt(r),
	}
	return c, c.Validate()
}
