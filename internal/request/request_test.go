package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

func TestParseCIDR(t *testing.T) {
	addr, prefix, err := ParseCIDR(" 192.168.0.0/24 ")
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0", addr.String())
	assert.Equal(t, vlsm.PrefixLength(24), prefix)

	// host bits are kept
	addr, _, err = ParseCIDR("10.0.0.5/8")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", addr.String())

	for _, bad := range []string{"", "10.0.0.0", "10.0.0.0/", "10.0.0.0/x", "10.0.0.0/33", "10.0.0/8", "::/0"} {
		_, _, err := ParseCIDR(bad)
		assert.ErrorIs(t, err, vlsm.ErrInvalidInput, bad)
	}
}

func TestParsePrefix(t *testing.T) {
	p, err := ParsePrefix("/26")
	require.NoError(t, err)
	assert.Equal(t, vlsm.PrefixLength(26), p)

	_, err = ParsePrefix("-1")
	assert.ErrorIs(t, err, vlsm.ErrInvalidInput)
}

func TestParseLists(t *testing.T) {
	demands, err := ParseLists("LAN A, LAN B ,LAN C", "100, 50,25")
	require.NoError(t, err)
	assert.Equal(t, []vlsm.Demand{
		{Name: "LAN A", Hosts: 100},
		{Name: "LAN B", Hosts: 50},
		{Name: "LAN C", Hosts: 25},
	}, demands)

	tests := []struct {
		name  string
		names string
		hosts string
	}{
		{"mismatched lengths", "a,b", "10"},
		{"no hosts", "a", ""},
		{"not a number", "a", "ten"},
		{"zero hosts", "a", "0"},
		{"negative hosts", "a,b", "5,-2"},
		{"empty name", "a,", "5,6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLists(tt.names, tt.hosts)
			assert.ErrorIs(t, err, vlsm.ErrInvalidInput)
		})
	}
}

func TestParseTokens(t *testing.T) {
	demands, err := ParseTokens([]string{"eng=60", "ops:12", "a=b=3"})
	require.NoError(t, err)
	assert.Equal(t, []vlsm.Demand{
		{Name: "eng", Hosts: 60},
		{Name: "ops", Hosts: 12},
		{Name: "a=b", Hosts: 3},
	}, demands)

	for _, bad := range []string{"eng", "=5", "eng=", "eng=0"} {
		_, err := ParseTokens([]string{bad})
		assert.ErrorIs(t, err, vlsm.ErrInvalidInput, bad)
	}
}

func TestParseLine(t *testing.T) {
	demands, err := ParseLine(`"Sales floor"=40 'lab:2'=12 guest=5`)
	require.NoError(t, err)
	assert.Equal(t, []vlsm.Demand{
		{Name: "Sales floor", Hosts: 40},
		{Name: "lab:2", Hosts: 12},
		{Name: "guest", Hosts: 5},
	}, demands)

	_, err = ParseLine(`"unterminated=4`)
	assert.ErrorIs(t, err, vlsm.ErrInvalidInput)

	_, err = ParseLine("   ")
	assert.ErrorIs(t, err, vlsm.ErrInvalidInput)
}

func TestFormatLine_RoundTrip(t *testing.T) {
	in := []vlsm.Demand{{Name: "Sales floor", Hosts: 40}, {Name: "lab", Hosts: 12}}
	out, err := ParseLine(FormatLine(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRequest_Allocate(t *testing.T) {
	r := &Request{
		Network: "192.168.0.0/24",
		Demands: []vlsm.Demand{{Name: "A", Hosts: 100}, {Name: "B", Hosts: 50}, {Name: "C", Hosts: 25}},
	}
	require.NoError(t, r.Validate())

	report, err := r.Allocate()
	require.NoError(t, err)
	require.Len(t, report.Allocated, 3)
	assert.Equal(t, "192.168.0.192/27", report.Allocated[2].CIDR())

	r.Network = "10.0.0.0/30"
	r.Demands = []vlsm.Demand{{Name: "x", Hosts: 10}}
	require.NoError(t, r.Validate())
	_, err = r.Allocate()
	assert.ErrorIs(t, err, vlsm.ErrCapacityExceeded)

	r.Demands = nil
	assert.ErrorIs(t, r.Validate(), vlsm.ErrInvalidInput)
}
