package detid

// DT field layout (low bits to high):
//
//	 0-2:  layer (0-4)
//	 3-4:  superlayer (0-3)
//	 5-8:  sector (0-14)
//	 9-11: station (0-4)
//	12-14: wheel + 3 (-2..2)
var (
	dtLayer      = field{shift: 0, width: 3}
	dtSuperLayer = field{shift: 3, width: 2}
	dtSector     = field{shift: 5, width: 4}
	dtStation    = field{shift: 9, width: 3}
	dtWheel      = field{shift: 12, width: 3, offset: 3}
)

// dtLayout lists every field of the DT layout.
var dtLayout = []field{dtLayer, dtSuperLayer, dtSector, dtStation, dtWheel}

const (
	MaxDTLayer      = 4
	MaxDTSuperLayer = 3
	MaxDTSector     = 14
	MaxDTStation    = 4
)

var (
	dtLayerBounds      = bounds{"layer", 0, MaxDTLayer}
	dtSuperLayerBounds = bounds{"superlayer", 0, MaxDTSuperLayer}
	dtSectorBounds     = bounds{"sector", 0, MaxDTSector}
	dtStationBounds    = bounds{"station", 0, MaxDTStation}
)

// DT is a decoded drift tube identifier.
type DT struct {
	Wheel      int `json:"wheel"`
	Station    int `json:"station"`
	Sector     int `json:"sector"`
	SuperLayer int `json:"superlayer"`
	Layer      int `json:"layer"`
}

// Validate checks every field against the DT domain.
func (d DT) Validate() error {
	if err := wheelBounds.check(SubsystemDT, d.Wheel); err != nil {
		return err
	}
	if err := dtStationBounds.check(SubsystemDT, d.Station); err != nil {
		return err
	}
	if err := dtSectorBounds.check(SubsystemDT, d.Sector); err != nil {
		return err
	}
	if err := dtSuperLayerBounds.check(SubsystemDT, d.SuperLayer); err != nil {
		return err
	}
	return dtLayerBounds.check(SubsystemDT, d.Layer)
}

// Pack encodes d after validating it.
func (d DT) Pack() (Raw, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	r := header(SubsystemDT)
	r = dtLayer.putInt(r, d.Layer)
	r = dtSuperLayer.putInt(r, d.SuperLayer)
	r = dtSector.putInt(r, d.Sector)
	r = dtStation.putInt(r, d.Station)
	r = dtWheel.putInt(r, d.Wheel)
	return r, nil
}

// DecodeDT unpacks a DT identifier and validates its fields.
func DecodeDT(r Raw) (DT, error) {
	if err := expect(r, SubsystemDT, dtLayout...); err != nil {
		return DT{}, err
	}
	d := DT{
		Wheel:      dtWheel.getInt(r),
		Station:    dtStation.getInt(r),
		Sector:     dtSector.getInt(r),
		SuperLayer: dtSuperLayer.getInt(r),
		Layer:      dtLayer.getInt(r),
	}
	return d, d.Validate()
}
