package detid

// RPC field layout (low bits to high):
//
//	 0-2:  roll (0-4)
//	 3-4:  layer (0-2)
//	 5-8:  sector (0-12)
//	 9-11: station (0-4)
//	12-14: ring + 2 (barrel wheel -2..2, endcap ring 0..3)
//	15-16: region + 1 (0 = barrel, +-1 = endcaps)
var (
	rpcRoll    = field{shift: 0, width: 3}
	rpcLayer   = field{shift: 3, width: 2}
	rpcSector  = field{shift: 5, width: 4}
	rpcStation = field{shift: 9, width: 3}
	rpcRing    = field{shift: 12, width: 3, offset: 2}
	rpcRegion  = field{shift: 15, width: 2, offset: 1}
)

// rpcLayout lists every field of the RPC layout.
var rpcLayout = []field{rpcRoll, rpcLayer, rpcSector, rpcStation, rpcRing, rpcRegion}

const (
	MaxRPCRoll    = 4
	MaxRPCLayer   = 2
	MaxRPCSector  = 12
	MaxRPCStation = 4
	MaxRPCRing    = 3
	MaxWheel      = 2

	RegionBarrel = 0
)

var (
	rpcRollBounds    = bounds{"roll", 0, MaxRPCRoll}
	rpcLayerBounds   = bounds{"layer", 0, MaxRPCLayer}
	rpcSectorBounds  = bounds{"sector", 0, MaxRPCSector}
	rpcStationBounds = bounds{"station", 0, MaxRPCStation}
	rpcEndcapRing    = bounds{"ring", 0, MaxRPCRing}
	wheelBounds      = bounds{"wheel", -MaxWheel, MaxWheel}
)

// RPC is a decoded resistive plate chamber identifier. In the barrel
// (Region 0) Ring carries the wheel number.
type RPC struct {
	Region  int `json:"region"`
	Ring    int `json:"ring"`
	Station int `json:"station"`
	Sector  int `json:"sector"`
	Layer   int `json:"layer"`
	Roll    int `json:"roll"`
}

// Barrel reports whether r is in the barrel region.
func (r RPC) Barrel() bool {
	return r.Region == RegionBarrel
}

// Validate checks every field against the RPC domain.
func (r RPC) Validate() error {
	if err := regionBounds.check(SubsystemRPC, r.Region); err != nil {
		return err
	}
	ring := rpcEndcapRing
	if r.Barrel() {
		ring = wheelBounds
	}
	if err := ring.check(SubsystemRPC, r.Ring); err != nil {
		return err
	}
	if err := rpcStationBounds.check(SubsystemRPC, r.Station); err != nil {
		return err
	}
	if err := rpcSectorBounds.check(SubsystemRPC, r.Sector); err != nil {
		return err
	}
	if err := rpcLayerBounds.check(SubsystemRPC, r.Layer); err != nil {
		return err
	}
	return rpcRollBounds.check(SubsystemRPC, r.Roll)
}

// Pack encodes r after validating it.
func (r RPC) Pack() (Raw, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	id := header(SubsystemRPC)
	id = rpcRoll.putInt(id, r.Roll)
	id = rpcLayer.putInt(id, r.Layer)
	id = rpcSector.putInt(id, r.Sector)
	id = rpcStation.putInt(id, r.Station)
	id = rpcRing.putInt(id, r.Ring)
	id = rpcRegion.putInt(id, r.Region)
	return id, nil
}

// DecodeRPC unpacks an RPC identifier and validates its fields.
func DecodeRPC(id Raw) (RPC, error) {
	if err := expect(id, SubsystemRPC, rpcLayout...); err != nil {
		return RPC{}, err
	}
	r := RPC{
		Region:  rpcRegion.getInt(id),
		Ring:    rpcRing.getInt(id),
		Station: rpcStation.getInt(id),
		Sector:  rpcSector.getInt(id),
		Layer:   rpcLayer.getInt(id),
		Roll:    rpcRoll.getInt(id),
	}
	return r, r.Validate()
}
