package chamber

import (
	"fmt"

	"github.com/roach88/muonid/internal/detid"
)

// cscRingTypes is indexed by [station][ring]. Station 1 ring 1 is the
// ME1/b partition and the extended ring 4 is ME1/a.
var cscRingTypes = [...][]CSCType{
	{CSCAll},
	{CSCME1, CSCME1b, CSCME12, CSCME13, CSCME1a},
	{CSCME2, CSCME21, CSCME22},
	{CSCME3, CSCME31, CSCME32},
	{CSCME4, CSCME41, CSCME42},
}

// ClassifyCSC maps a CSC station and ring to its chamber type. Ring 0
// selects the whole station and station 0 the whole subsystem.
func ClassifyCSC(station, ring int) (CSCType, error) {
	if station < 0 || station > detid.MaxCSCStation {
		return CSCAll, outOfDomain(detid.SubsystemCSC, "station", station, 0, detid.MaxCSCStation)
	}
	rings := cscRingTypes[station]
	if ring < 0 || ring >= len(rings) {
		return CSCAll, outOfDomain(detid.SubsystemCSC, "ring", ring, 0, len(rings)-1)
	}
	return rings[ring], nil
}

// ClassifyGEM maps a GEM station and ring to its chamber type. Both the
// long and short rings of a station share one type; station 0 is ALL.
func ClassifyGEM(station, ring int) (GEMType, error) {
	if station < 0 || station > detid.MaxGEMStation {
		return GEMAll, outOfDomain(detid.SubsystemGEM, "station", station, 0, detid.MaxGEMStation)
	}
	if ring < 0 || ring > detid.GEMRingShort {
		return GEMAll, outOfDomain(detid.SubsystemGEM, "ring", ring, 0, detid.GEMRingShort)
	}
	switch station {
	case 1:
		return GEMGE11, nil
	case 2:
		return GEMGE21, nil
	default:
		return GEMAll, nil
	}
}

// ClassifyRPC maps an RPC region, station and ring to its chamber type.
// In the barrel (region 0) ring is the wheel and the sign of the wheel
// selects the positive or negative variant.
func ClassifyRPC(region, station, ring int) (RPCType, error) {
	if region < -1 || region > 1 {
		return RPCAll, outOfDomain(detid.SubsystemRPC, "region", region, -1, 1)
	}
	if station < 0 || station > detid.MaxRPCStation {
		return RPCAll, outOfDomain(detid.SubsystemRPC, "station", station, 0, detid.MaxRPCStation)
	}
	if region == detid.RegionBarrel {
		if ring < -detid.MaxWheel || ring > detid.MaxWheel {
			return RPCAll, outOfDomain(detid.SubsystemRPC, "wheel", ring, -detid.MaxWheel, detid.MaxWheel)
		}
		if station == 0 {
			return RPCAll, nil
		}
		return rpcBarrel(ring, station), nil
	}
	if ring < 0 || ring > detid.MaxRPCRing {
		return RPCAll, outOfDomain(detid.SubsystemRPC, "ring", ring, 0, detid.MaxRPCRing)
	}
	return rpcEndcapTypes[station][ring], nil
}

// ClassifyDT maps a DT wheel and station to its chamber type.
func ClassifyDT(wheel, station int) (DTType, error) {
	if wheel < -detid.MaxWheel || wheel > detid.MaxWheel {
		return DTAll, outOfDomain(detid.SubsystemDT, "wheel", wheel, -detid.MaxWheel, detid.MaxWheel)
	}
	if station < 0 || station > detid.MaxDTStation {
		return DTAll, outOfDomain(detid.SubsystemDT, "station", station, 0, detid.MaxDTStation)
	}
	if station == 0 {
		return DTAll, nil
	}
	return dtBarrel(wheel, station), nil
}

// ClassifyID decodes r and classifies it with the classifier of its
// subsystem.
func ClassifyID(r detid.Raw) (Type, error) {
	switch r.Subsystem() {
	case detid.SubsystemCSC:
		id, err := detid.DecodeCSC(r)
		if err != nil {
			return nil, err
		}
		return ClassifyCSC(id.Station, id.Ring)
	case detid.SubsystemGEM:
		id, err := detid.DecodeGEM(r)
		if err != nil {
			return nil, err
		}
		return ClassifyGEM(id.Station, id.Ring)
	case detid.SubsystemRPC:
		id, err := detid.DecodeRPC(r)
		if err != nil {
			return nil, err
		}
		return ClassifyRPC(id.Region, id.Station, id.Ring)
	case detid.SubsystemDT:
		id, err := detid.DecodeDT(r)
		if err != nil {
			return nil, err
		}
		return ClassifyDT(id.Wheel, id.Station)
	case detid.SubsystemME0:
		if _, err := detid.DecodeME0(r); err != nil {
			return nil, err
		}
		return ME0ME0, nil
	default:
		return nil, &detid.GeometryError{
			Code:    detid.ErrCodeMalformed,
			Message: fmt.Sprintf("%s is not a muon detector id", r),
		}
	}
}

// ClassifyLabel classifies r and renders the label of the result.
func ClassifyLabel(r detid.Raw) (string, error) {
	t, err := ClassifyID(r)
	if err != nil {
		return "", err
	}
	return t.Label(), nil
}

func outOfDomain(s detid.Subsystem, name string, v, lo, hi int) error {
	return detid.NewInvalidGeometry(s, name, v, fmt.Sprintf("must be in [%d, %d]", lo, hi))
}
