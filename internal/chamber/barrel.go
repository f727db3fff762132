package chamber

import (
	"fmt"

	"github.com/roach88/muonid/internal/detid"
)

// Barrel types are laid out in blocks of four stations per wheel, wheels
// ordered 0, +1, +2, -1, -2.
var barrelWheels = [...]int{0, 1, 2, -1, -2}

const barrelStations = 4

func barrelSlot(wheel int) int {
	if wheel < 0 {
		return 2 - wheel
	}
	return wheel
}

// barrelLabel renders prefix+"0/1", prefix+"+2/3", prefix+"-1/4".
func barrelLabel(prefix string, wheel, station int) string {
	if wheel == 0 {
		return fmt.Sprintf("%s0/%d", prefix, station)
	}
	return fmt.Sprintf("%s%+d/%d", prefix, wheel, station)
}

// RPCType enumerates resistive plate chamber types: endcap rings, barrel
// wheel/station combinations with their wheel sign, and per-station groups.
type RPCType uint8

const (
	RPCAll RPCType = iota
	RPCRE12
	RPCRE13
	RPCRE22
	RPCRE23
	RPCRE31
	RPCRE32
	RPCRE33
	RPCRE41
	RPCRE42
	RPCRE43
	RPCRB01
	RPCRB02
	RPCRB03
	RPCRB04
	RPCRB11P
	RPCRB12P
	RPCRB13P
	RPCRB14P
	RPCRB21P
	RPCRB22P
	RPCRB23P
	RPCRB24P
	RPCRB11N
	RPCRB12N
	RPCRB13N
	RPCRB14N
	RPCRB21N
	RPCRB22N
	RPCRB23N
	RPCRB24N
	RPCRE1
	RPCRE2
	RPCRE3
	RPCRE4
	RPCRB1
	RPCRB2
	RPCRB3
	RPCRB4
	rpcTypeCount
)

// rpcEndcapTypes is indexed by [station][ring]; RPCAll marks rings
// without a dedicated type.
var rpcEndcapTypes = [...][4]RPCType{
	{RPCAll, RPCAll, RPCAll, RPCAll},
	{RPCRE1, RPCAll, RPCRE12, RPCRE13},
	{RPCRE2, RPCAll, RPCRE22, RPCRE23},
	{RPCRE3, RPCRE31, RPCRE32, RPCRE33},
	{RPCRE4, RPCRE41, RPCRE42, RPCRE43},
}

func rpcBarrel(wheel, station int) RPCType {
	return RPCRB01 + RPCType(barrelSlot(wheel)*barrelStations+station-1)
}

// barrel returns the wheel and station of a wheel-specific barrel type.
func (t RPCType) barrel() (wheel, station int, ok bool) {
	if t < RPCRB01 || t > RPCRB24N {
		return 0, 0, false
	}
	i := int(t - RPCRB01)
	return barrelWheels[i/barrelStations], i%barrelStations + 1, true
}

// endcap returns the station and ring of a ring-specific endcap type.
func (t RPCType) endcap() (station, ring int, ok bool) {
	for st, rings := range rpcEndcapTypes {
		for ri, rt := range rings {
			if ri > 0 && rt == t && rt != RPCAll {
				return st, ri, true
			}
		}
	}
	return 0, 0, false
}

func (t RPCType) Subsystem() detid.Subsystem { return detid.SubsystemRPC }
func (t RPCType) IsAll() bool                { return t == RPCAll }
func (t RPCType) String() string             { return t.Label() }
func (RPCType) sealed()                      {}

func (t RPCType) Label() string {
	if t == RPCAll {
		return "ALL"
	}
	if st, ri, ok := t.endcap(); ok {
		return fmt.Sprintf("RE%d/%d", st, ri)
	}
	if wh, st, ok := t.barrel(); ok {
		return barrelLabel("RB", wh, st)
	}
	switch {
	case t >= RPCRE1 && t <= RPCRE4:
		return fmt.Sprintf("RE%d", int(t-RPCRE1)+1)
	case t >= RPCRB1 && t <= RPCRB4:
		return fmt.Sprintf("RB%d", int(t-RPCRB1)+1)
	}
	return fmt.Sprintf("RPCType(%d)", uint8(t))
}

// Station returns the station of t, 0 for RPCAll.
func (t RPCType) Station() int {
	if st, _, ok := t.endcap(); ok {
		return st
	}
	if _, st, ok := t.barrel(); ok {
		return st
	}
	switch {
	case t >= RPCRE1 && t <= RPCRE4:
		return int(t-RPCRE1) + 1
	case t >= RPCRB1 && t <= RPCRB4:
		return int(t-RPCRB1) + 1
	}
	return 0
}

// Parent groups endcap rings under REn and barrel wheels under RBn.
func (t RPCType) Parent() Type {
	if st, _, ok := t.endcap(); ok {
		return RPCRE1 + RPCType(st-1)
	}
	if _, st, ok := t.barrel(); ok {
		return RPCRB1 + RPCType(st-1)
	}
	return RPCAll
}

// RPCTypes returns every RPCType in enum order.
func RPCTypes() []RPCType {
	out := make([]RPCType, 0, rpcTypeCount)
	for t := RPCAll; t < rpcTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// DTType enumerates drift tube chamber types.
type DTType uint8

const (
	DTAll DTType = iota
	DTMB01
	DTMB02
	DTMB03
	DTMB04
	DTMB11P
	DTMB12P
	DTMB13P
	DTMB14P
	DTMB21P
	DTMB22P
	DTMB23P
	DTMB24P
	DTMB11N
	DTMB12N
	DTMB13N
	DTMB14N
	DTMB21N
	DTMB22N
	DTMB23N
	DTMB24N
	DTMB1
	DTMB2
	DTMB3
	DTMB4
	dtTypeCount
)

func dtBarrel(wheel, station int) DTType {
	return DTMB01 + DTType(barrelSlot(wheel)*barrelStations+station-1)
}

func (t DTType) barrel() (wheel, station int, ok bool) {
	if t < DTMB01 || t > DTMB24N {
		return 0, 0, false
	}
	i := int(t - DTMB01)
	return barrelWheels[i/barrelStations], i%barrelStations + 1, true
}

func (t DTType) Subsystem() detid.Subsystem { return detid.SubsystemDT }
func (t DTType) IsAll() bool                { return t == DTAll }
func (t DTType) String() string             { return t.Label() }
func (DTType) sealed()                      {}

func (t DTType) Label() string {
	if t == DTAll {
		return "ALL"
	}
	if wh, st, ok := t.barrel(); ok {
		return barrelLabel("MB", wh, st)
	}
	if t >= DTMB1 && t <= DTMB4 {
		return fmt.Sprintf("MB%d", int(t-DTMB1)+1)
	}
	return fmt.Sprintf("DTType(%d)", uint8(t))
}

// Station returns the station of t, 0 for DTAll.
func (t DTType) Station() int {
	if _, st, ok := t.barrel(); ok {
		return st
	}
	if t >= DTMB1 && t <= DTMB4 {
		return int(t-DTMB1) + 1
	}
	return 0
}

func (t DTType) Parent() Type {
	if _, st, ok := t.barrel(); ok {
		return DTMB1 + DTType(st-1)
	}
	return DTAll
}

// DTTypes returns every DTType in enum order.
func DTTypes() []DTType {
	out := make([]DTType, 0, dtTypeCount)
	for t := DTAll; t < dtTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
