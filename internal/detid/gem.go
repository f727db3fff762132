package detid

// GEM field layout (low bits to high):
//
//	 0-4:  roll (0-16)
//	 5-10: chamber (0-36)
//	11-12: layer (0-2, 0 is the superchamber)
//	13-15: ring (0-2, 1 = long, 2 = short)
//	16-18: station (0-2)
//	19-20: region + 1 (region is -1 or +1)
var (
	gemRoll    = field{shift: 0, width: 5}
	gemChamber = field{shift: 5, width: 6}
	gemLayer   = field{shift: 11, width: 2}
	gemRing    = field{shift: 13, width: 3}
	gemStation = field{shift: 16, width: 3}
	gemRegion  = field{shift: 19, width: 2, offset: 1}
)

// gemLayout lists every field of the GEM layout.
var gemLayout = []field{gemRoll, gemChamber, gemLayer, gemRing, gemStation, gemRegion}

const (
	MaxGEMRoll    = 16
	MaxGEMChamber = 36
	MaxGEMLayer   = 2
	MaxGEMStation = 2

	// GEMRingLong and GEMRingShort select the long and short chamber
	// variants of a station.
	GEMRingLong  = 1
	GEMRingShort = 2
)

var (
	regionBounds     = bounds{"region", -1, 1}
	gemStationBounds = bounds{"station", 0, MaxGEMStation}
	gemRingBounds    = bounds{"ring", 0, GEMRingShort}
	gemLayerBounds   = bounds{"layer", 0, MaxGEMLayer}
	gemChamberBounds = bounds{"chamber", 0, MaxGEMChamber}
	gemRollBounds    = bounds{"roll", 0, MaxGEMRoll}
)

// GEM is a decoded gas electron multiplier identifier.
type GEM struct {
	Region  int `json:"region"`
	Station int `json:"station"`
	Ring    int `json:"ring"`
	Layer   int `json:"layer"`
	Chamber int `json:"chamber"`
	Roll    int `json:"roll"`
}

// Validate checks every field against the GEM domain.
func (g GEM) Validate() error {
	if err := checkEndcapRegion(SubsystemGEM, g.Region); err != nil {
		return err
	}
	if err := gemStationBounds.check(SubsystemGEM, g.Station); err != nil {
		return err
	}
	if err := gemRingBounds.check(SubsystemGEM, g.Ring); err != nil {
		return err
	}
	if err := gemLayerBounds.check(SubsystemGEM, g.Layer); err != nil {
		return err
	}
	if err := gemChamberBounds.check(SubsystemGEM, g.Chamber); err != nil {
		return err
	}
	return gemRollBounds.check(SubsystemGEM, g.Roll)
}

// Pack encodes g after validating it.
func (g GEM) Pack() (Raw, error) {
	if err := g.Validate(); err != nil {
		return 0, err
	}
	r := header(SubsystemGEM)
	r = gemRoll.putInt(r, g.Roll)
	r = gemChamber.putInt(r, g.Chamber)
	r = gemLayer.putInt(r, g.Layer)
	r = gemRing.putInt(r, g.Ring)
	r = gemStation.putInt(r, g.Station)
	r = gemRegion.putInt(r, g.Region)
	return r, nil
}

// DecodeGEM unpacks a GEM identifier and validates its fields.
func DecodeGEM(r Raw) (GEM, error) {
	if err := expect(r, SubsystemGEM, gemLayout...); err != nil {
		return GEM{}, err
	}
	g := GEM{
		Region:  gemRegion.getInt(r),
		Station: gemStation.getInt(r),
		Ring:    gemRing.getInt(r),
		Layer:   gemLayer.getInt(r),
		Chamber: gemChamber.getInt(r),
		Roll:    gemRoll.getInt(r),
	}
	return g, g.Validate()
}

// checkEndcapRegion accepts only -1 and +1.
func checkEndcapRegion(s Subsystem, region int) error {
	if err := regionBounds.check(s, region); err != nil {
		return err
	}
	if region == 0 {
		return NewInvalidGeometry(s, "region", region, "endcap-only subsystem has no barrel region")
	}
	return nil
}
