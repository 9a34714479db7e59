package vlsm

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"slices"
)

var (
	// ErrInvalidInput marks malformed addresses, prefixes or demands.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCapacityExceeded marks demands that do not fit the base network.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// addressSpace is the number of IPv4 addresses.
const addressSpace = uint64(1) << MaxPrefix

// Allocate parses baseAddress and plans the demands inside
// baseAddress/basePrefixLength. See AllocateNetwork.
func Allocate(baseAddress string, basePrefixLength int, demands []Demand) (*Report, error) {
	base, err := ParseAddress(baseAddress)
	if err != nil {
		return nil, err
	}
	return AllocateNetwork(base, PrefixLength(basePrefixLength), demands)
}

// AllocateNetwork places each demand, largest first, in consecutive blocks
// starting at base and decomposes the rest of the network into leftover
// blocks. The demands slice is not modified.
func AllocateNetwork(base Address, basePrefix PrefixLength, demands []Demand) (*Report, error) {
	if !basePrefix.Valid() {
		return nil, fmt.Errorf("%w: prefix length %d out of range [0,32]", ErrInvalidInput, basePrefix)
	}
	if len(demands) == 0 {
		return nil, fmt.Errorf("%w: at least one demand is required", ErrInvalidInput)
	}
	for _, d := range demands {
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	capacity := basePrefix.Size()
	if uint64(base)+capacity > addressSpace {
		return nil, fmt.Errorf("%w: %s/%d extends past 255.255.255.255", ErrInvalidInput, base, basePrefix)
	}

	sorted := slices.Clone(demands)
	slices.SortStableFunc(sorted, func(a, b Demand) int {
		return cmp.Compare(b.Hosts, a.Hosts)
	})

	report := &Report{
		Base:       base,
		BasePrefix: basePrefix,
		Demands:    sorted,
		Allocated:  make([]Block, 0, len(sorted)),
	}

	var used uint64
	for i := range sorted {
		d := &sorted[i]
		prefix, err := MinimalPrefix(d.Hosts)
		if err != nil {
			return nil, fmt.Errorf("demand %q: %w", d.Name, err)
		}
		if prefix < basePrefix {
			return nil, fmt.Errorf("%w: demand %q needs a /%d, larger than %s/%d",
				ErrCapacityExceeded, d.Name, prefix, base, basePrefix)
		}
		size := prefix.Size()
		if size > capacity-used {
			return nil, fmt.Errorf("%w: demand %q needs %d addresses but only %d of %d remain in %s/%d",
				ErrCapacityExceeded, d.Name, size, capacity-used, capacity, base, basePrefix)
		}
		report.Allocated = append(report.Allocated, Block{
			Network: Address(uint64(base) + used),
			Prefix:  prefix,
			Ordinal: i,
			Demand:  d,
		})
		used += size
	}

	report.Leftover = decompose(uint64(base)+used, capacity-used, len(sorted))
	return report, nil
}

// MinimalPrefix returns the longest prefix whose block holds hosts usable
// addresses plus the network and broadcast addresses.
func MinimalPrefix(hosts int) (PrefixLength, error) {
	if hosts <= 0 {
		return 0, fmt.Errorf("%w: host count must be positive (got %d)", ErrInvalidInput, hosts)
	}
	// smallest b with 2^b - 2 >= hosts, i.e. 2^b > hosts+1
	hostBits := bits.Len64(uint64(hosts) + 1)
	if hostBits > MaxPrefix {
		return 0, fmt.Errorf("%w: %d hosts do not fit in any IPv4 network", ErrCapacityExceeded, hosts)
	}
	return PrefixLength(MaxPrefix - hostBits), nil
}

// decompose splits remaining addresses starting at cursor into blocks sized
// by the highest set bit of what is left. Blocks are returned from the
// highest address down; ordinals count up from first in address order.
func decompose(cursor, remaining uint64, first int) []Block {
	var blocks []Block
	for ordinal := first; remaining > 0; ordinal++ {
		hostBits := bits.Len64(remaining) - 1
		size := uint64(1) << hostBits
		blocks = append(blocks, Block{
			Network: Address(cursor),
			Prefix:  PrefixLength(MaxPrefix - hostBits),
			Ordinal: ordinal,
		})
		cursor += size
		remaining -= size
	}
	slices.Reverse(blocks)
	return blocks
}
