package vlsm

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"
)

// MaxPrefix is the prefix length of a single IPv4 address.
const MaxPrefix = 32

// Address is an IPv4 address held as a 32-bit integer.
type Address uint32

// ParseAddress parses a dotted-decimal IPv4 address.
func ParseAddress(s string) (Address, error) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid IPv4 address %q", ErrInvalidInput, s)
	}
	if !ip.Is4() {
		return 0, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidInput, s)
	}
	b := ip.As4()
	return Address(binary.BigEndian.Uint32(b[:])), nil
}

// MustParseAddress is like ParseAddress but panics on error.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Octets returns the four bytes of the address, most significant first.
func (a Address) Octets() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return b
}

// String returns the dotted-decimal form.
func (a Address) String() string {
	b := a.Octets()
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}

// Binary returns each octet as eight zero-padded bits joined by dots.
func (a Address) Binary() string {
	b := a.Octets()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", b[0], b[1], b[2], b[3])
}

// Addr converts to a netip.Addr.
func (a Address) Addr() netip.Addr {
	return netip.AddrFrom4(a.Octets())
}

// PrefixLength is the number of leading one bits in a subnet mask.
type PrefixLength int

// Valid reports whether p is within [0, 32].
func (p PrefixLength) Valid() bool {
	return p >= 0 && p <= MaxPrefix
}

// Size returns the number of addresses covered by the prefix.
func (p PrefixLength) Size() uint64 {
	return uint64(1) << (MaxPrefix - int(p))
}

// Mask returns the subnet mask as an address.
func (p PrefixLength) Mask() Address {
	if p <= 0 {
		return 0
	}
	return Address(uint32(0xFFFFFFFF) << (MaxPrefix - int(p)))
}

// HostBits returns the number of host bits (32 - p).
func (p PrefixLength) HostBits() int {
	return MaxPrefix - int(p)
}
