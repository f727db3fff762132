package chamber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/muonid/internal/detid"
)

func TestClassifyCSC(t *testing.T) {
	tests := []struct {
		station, ring int
		want          CSCType
		label         string
	}{
		{0, 0, CSCAll, "ALL"},
		{1, 0, CSCME1, "ME1"},
		{1, 1, CSCME1b, "ME1/b"},
		{1, 2, CSCME12, "ME1/2"},
		{1, 3, CSCME13, "ME1/3"},
		{1, 4, CSCME1a, "ME1/a"},
		{2, 0, CSCME2, "ME2"},
		{2, 1, CSCME21, "ME2/1"},
		{2, 2, CSCME22, "ME2/2"},
		{3, 1, CSCME31, "ME3/1"},
		{3, 2, CSCME32, "ME3/2"},
		{4, 1, CSCME41, "ME4/1"},
		{4, 2, CSCME42, "ME4/2"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ClassifyCSC(tt.station, tt.ring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, detid.SubsystemCSC, got.Subsystem())
		})
	}
}

func TestClassifyCSCIsTotalOverValidPairs(t *testing.T) {
	seen := map[[2]int]CSCType{}
	for station := 0; station <= detid.MaxCSCStation; station++ {
		for ring := 0; ring <= detid.MaxCSCRing(station); ring++ {
			got, err := ClassifyCSC(station, ring)
			require.NoError(t, err, "station %d ring %d", station, ring)

			again, err := ClassifyCSC(station, ring)
			require.NoError(t, err)
			assert.Equal(t, got, again, "classification must be single-valued")
			seen[[2]int{station, ring}] = got
		}
	}

	assert.NotEqual(t, seen[[2]int{1, 1}], seen[[2]int{1, 4}],
		"ring 1 and ring 4 of station 1 are distinct partitions")
	assert.Len(t, seen, 1+5+3+3+3)
}

func TestClassifyCSCOutOfDomain(t *testing.T) {
	tests := []struct {
		name          string
		station, ring int
	}{
		{"negative station", -1, 1},
		{"station 5", 5, 1},
		{"station 2 ring 3", 2, 3},
		{"station 3 ring 4", 3, 4},
		{"station 0 ring 1", 0, 1},
		{"negative ring", 1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ClassifyCSC(tt.station, tt.ring)
			require.Error(t, err)
			assert.True(t, detid.IsInvalidGeometry(err))
		})
	}
}

func TestCSCParent(t *testing.T) {
	assert.Equal(t, Type(CSCME11), CSCME1a.Parent())
	assert.Equal(t, Type(CSCME11), CSCME1b.Parent())
	assert.Equal(t, Type(CSCME1), CSCME11.Parent())
	assert.Equal(t, Type(CSCME1), CSCME13.Parent())
	assert.Equal(t, Type(CSCME3), CSCME32.Parent())
	assert.Equal(t, Type(CSCAll), CSCME4.Parent())
	assert.Equal(t, Type(CSCAll), CSCAll.Parent())
}

// Station 1 ring 1 is ME1/b and ring 4 is ME1/a, as in the CMS
// MuonSubdetId numbering.
func TestClassifyCSCStationOnePartitions(t *testing.T) {
	ring1, err := ClassifyCSC(1, 1)
	require.NoError(t, err)
	assert.Equal(t, CSCME1b, ring1)

	ring4, err := ClassifyCSC(1, detid.RingME1a)
	require.NoError(t, err)
	assert.Equal(t, CSCME1a, ring4)

	for ring := 0; ring <= detid.MaxCSCRing(1); ring++ {
		got, err := ClassifyCSC(1, ring)
		require.NoError(t, err)
		assert.NotEqual(t, CSCME11, got, "ME1/1 is only reached through Parent")
	}
}

func TestClassifyGEM(t *testing.T) {
	tests := []struct {
		station, ring int
		want          GEMType
	}{
		{0, 0, GEMAll},
		{0, 1, GEMAll},
		{1, detid.GEMRingLong, GEMGE11},
		{2, detid.GEMRingLong, GEMGE21},
		{2, detid.GEMRingShort, GEMGE21},
	}
	for _, tt := range tests {
		got, err := ClassifyGEM(tt.station, tt.ring)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "station %d ring %d", tt.station, tt.ring)
	}

	_, err := ClassifyGEM(3, 1)
	assert.True(t, detid.IsInvalidGeometry(err))
	_, err = ClassifyGEM(1, 3)
	assert.True(t, detid.IsInvalidGeometry(err))

	assert.Equal(t, "GE1/1", GEMGE11.Label())
	assert.Equal(t, "GE2/1", GEMGE21.Label())
}

func TestClassifyRPCEndcap(t *testing.T) {
	tests := []struct {
		region, station, ring int
		want                  RPCType
		label                 string
	}{
		{1, 0, 0, RPCAll, "ALL"},
		{1, 1, 0, RPCRE1, "RE1"},
		{1, 1, 1, RPCAll, "ALL"},
		{1, 1, 2, RPCRE12, "RE1/2"},
		{-1, 1, 3, RPCRE13, "RE1/3"},
		{1, 2, 2, RPCRE22, "RE2/2"},
		{-1, 2, 3, RPCRE23, "RE2/3"},
		{1, 3, 1, RPCRE31, "RE3/1"},
		{1, 3, 3, RPCRE33, "RE3/3"},
		{-1, 4, 2, RPCRE42, "RE4/2"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ClassifyRPC(tt.region, tt.station, tt.ring)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}
}

func TestClassifyRPCBarrelWheelSign(t *testing.T) {
	tests := []struct {
		wheel, station int
		want           RPCType
		label          string
	}{
		{0, 1, RPCRB01, "RB0/1"},
		{0, 4, RPCRB04, "RB0/4"},
		{1, 1, RPCRB11P, "RB+1/1"},
		{1, 4, RPCRB14P, "RB+1/4"},
		{2, 1, RPCRB21P, "RB+2/1"},
		{2, 3, RPCRB23P, "RB+2/3"},
		{-1, 2, RPCRB12N, "RB-1/2"},
		{-2, 1, RPCRB21N, "RB-2/1"},
		{-2, 4, RPCRB24N, "RB-2/4"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ClassifyRPC(detid.RegionBarrel, tt.station, tt.wheel)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, tt.station, got.Station())
			assert.Equal(t, Type(RPCRB1+RPCType(tt.station-1)), got.Parent())
		})
	}

	plus, err := ClassifyRPC(detid.RegionBarrel, 1, 2)
	require.NoError(t, err)
	minus, err := ClassifyRPC(detid.RegionBarrel, 1, -2)
	require.NoError(t, err)
	assert.NotEqual(t, plus, minus)
}

func TestClassifyRPCOutOfDomain(t *testing.T) {
	_, err := ClassifyRPC(2, 1, 1)
	assert.True(t, detid.IsInvalidGeometry(err))
	_, err = ClassifyRPC(0, 1, 3)
	assert.True(t, detid.IsInvalidGeometry(err))
	_, err = ClassifyRPC(1, 1, -1)
	assert.True(t, detid.IsInvalidGeometry(err))
	_, err = ClassifyRPC(1, 5, 1)
	assert.True(t, detid.IsInvalidGeometry(err))

	got, err := ClassifyRPC(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, RPCAll, got)
}

func TestClassifyDT(t *testing.T) {
	tests := []struct {
		wheel, station int
		want           DTType
		label          string
	}{
		{0, 0, DTAll, "ALL"},
		{0, 1, DTMB01, "MB0/1"},
		{1, 3, DTMB13P, "MB+1/3"},
		{2, 1, DTMB21P, "MB+2/1"},
		{-1, 3, DTMB13N, "MB-1/3"},
		{-2, 1, DTMB21N, "MB-2/1"},
		{-2, 4, DTMB24N, "MB-2/4"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ClassifyDT(tt.wheel, tt.station)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
		})
	}

	_, err := ClassifyDT(3, 1)
	assert.True(t, detid.IsInvalidGeometry(err))
	_, err = ClassifyDT(0, 5)
	assert.True(t, detid.IsInvalidGeometry(err))

	assert.Equal(t, Type(DTMB2), DTMB22N.Parent())
	assert.Equal(t, "MB4", DTMB4.Label())
}

func TestLabelsAreUniqueAndStable(t *testing.T) {
	check := func(t *testing.T, types []Type) {
		t.Helper()
		labels := map[string]Type{}
		for _, typ := range types {
			label := typ.Label()
			assert.Equal(t, label, typ.Label(), "label must be stable")
			assert.Equal(t, label, typ.String())
			prev, dup := labels[label]
			assert.False(t, dup, "label %q used by %v and %v", label, prev, typ)
			labels[label] = typ
		}
	}

	t.Run("csc", func(t *testing.T) {
		var types []Type
		for _, typ := range CSCTypes() {
			types = append(types, typ)
		}
		check(t, types)
	})
	t.Run("rpc", func(t *testing.T) {
		var types []Type
		for _, typ := range RPCTypes() {
			types = append(types, typ)
		}
		check(t, types)
	})
	t.Run("dt", func(t *testing.T) {
		var types []Type
		for _, typ := range DTTypes() {
			types = append(types, typ)
		}
		check(t, types)
	})
	t.Run("gem", func(t *testing.T) {
		var types []Type
		for _, typ := range GEMTypes() {
			types = append(types, typ)
		}
		check(t, types)
	})
}

func TestEveryParentChainEndsAtAll(t *testing.T) {
	var types []Type
	for _, typ := range CSCTypes() {
		types = append(types, typ)
	}
	for _, typ := range RPCTypes() {
		types = append(types, typ)
	}
	for _, typ := range DTTypes() {
		types = append(types, typ)
	}
	for _, typ := range types {
		cur := typ
		for i := 0; i < 4 && !cur.IsAll(); i++ {
			assert.Equal(t, typ.Subsystem(), cur.Parent().Subsystem())
			cur = cur.Parent()
		}
		assert.True(t, cur.IsAll(), "%v does not reach ALL", typ)
	}
}

func TestClassifyID(t *testing.T) {
	me1a, err := detid.CSC{Endcap: 2, Station: 1, Ring: detid.RingME1a, Chamber: 3, Layer: 1}.Pack()
	require.NoError(t, err)
	ge21, err := detid.GEM{Region: -1, Station: 2, Ring: detid.GEMRingShort, Layer: 2, Chamber: 7}.Pack()
	require.NoError(t, err)
	rb, err := detid.RPC{Region: 0, Ring: -1, Station: 2, Sector: 4}.Pack()
	require.NoError(t, err)
	mb, err := detid.DT{Wheel: 2, Station: 1, Sector: 1}.Pack()
	require.NoError(t, err)
	me0, err := detid.ME0{Region: 1, Layer: 1, Chamber: 2}.Pack()
	require.NoError(t, err)

	tests := []struct {
		raw   detid.Raw
		want  Type
		label string
	}{
		{me1a, CSCME1a, "ME1/a"},
		{ge21, GEMGE21, "GE2/1"},
		{rb, RPCRB12N, "RB-1/2"},
		{mb, DTMB21P, "MB+2/1"},
		{me0, ME0ME0, "ME0"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ClassifyID(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			label, err := ClassifyLabel(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestClassifyIDRejectsMalformed(t *testing.T) {
	_, err := ClassifyID(detid.Raw(0))
	var ge *detid.GeometryError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, detid.ErrCodeMalformed, ge.Code)

	_, err = ClassifyLabel(detid.Raw(0x10000000))
	assert.Error(t, err)
}

func TestTypesAcrossSubsystemsNeverCompareEqual(t *testing.T) {
	var csc Type = CSCAll
	var gem Type = GEMAll
	assert.NotEqual(t, csc, gem)
	assert.Equal(t, csc.Label(), gem.Label())
}
