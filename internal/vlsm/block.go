package vlsm

import "fmt"

// Demand is a named request for a subnet with at least Hosts usable addresses.
type Demand struct {
	Name  string
	Hosts int
}

// Validate checks the demand has a name and a positive host count.
func (d Demand) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: demand name cannot be empty", ErrInvalidInput)
	}
	if d.Hosts <= 0 {
		return fmt.Errorf("%w: demand %q needs a positive host count (got %d)", ErrInvalidInput, d.Name, d.Hosts)
	}
	return nil
}

// Block is one contiguous slice of the base network.
// A nil Demand marks a leftover block.
type Block struct {
	Network Address
	Prefix  PrefixLength
	Ordinal int
	Demand  *Demand
}

// IsLeftover reports whether the block is unused space.
func (b Block) IsLeftover() bool {
	return b.Demand == nil
}

// Name returns the demand name, or "" for leftover blocks.
func (b Block) Name() string {
	if b.Demand == nil {
		return ""
	}
	return b.Demand.Name
}

// Size returns the number of addresses in the block.
func (b Block) Size() uint64 {
	return b.Prefix.Size()
}

// End returns the offset one past the last address, as a 64-bit value.
func (b Block) End() uint64 {
	return uint64(b.Network) + b.Size()
}

// Broadcast returns the last address of the block.
func (b Block) Broadcast() Address {
	return Address(b.End() - 1)
}

// FirstUsable returns the first host address. Blocks of one or two
// addresses have no reserved addresses and start at the network address.
func (b Block) FirstUsable() Address {
	if b.Size() <= 2 {
		return b.Network
	}
	return b.Network + 1
}

// LastUsable returns the last host address. Blocks of one or two addresses
// end at the broadcast address.
func (b Block) LastUsable() Address {
	if b.Size() <= 2 {
		return b.Broadcast()
	}
	return b.Broadcast() - 1
}

// HostCapacity returns the number of usable hosts (size minus network and
// broadcast), or zero for /31 and /32.
func (b Block) HostCapacity() uint64 {
	if b.Size() <= 2 {
		return 0
	}
	return b.Size() - 2
}

// Mask returns the subnet mask.
func (b Block) Mask() Address {
	return b.Prefix.Mask()
}

// Contains reports whether a falls inside the block.
func (b Block) Contains(a Address) bool {
	return uint64(a) >= uint64(b.Network) && uint64(a) < b.End()
}

// CIDR returns the block in a.b.c.d/n form.
func (b Block) CIDR() string {
	return fmt.Sprintf("%s/%d", b.Network, b.Prefix)
}

func (b Block) String() string {
	if b.Demand == nil {
		return b.CIDR()
	}
	return fmt.Sprintf("%s (%s)", b.CIDR(), b.Demand.Name)
}

// Report is the result of one allocation.
type Report struct {
	Base       Address
	BasePrefix PrefixLength

	// Demands holds the input demands in placement order.
	Demands []Demand

	// Allocated holds one block per demand, in placement order.
	Allocated []Block

	// Leftover holds unused space from the highest address to the lowest.
	Leftover []Block
}

// BaseBlock returns the base network as a block.
func (r *Report) BaseBlock() Block {
	return Block{Network: r.Base, Prefix: r.BasePrefix, Ordinal: -1}
}

// Capacity returns the number of addresses in the base network.
func (r *Report) Capacity() uint64 {
	return r.BasePrefix.Size()
}

// Used returns the number of addresses taken by demand blocks.
func (r *Report) Used() uint64 {
	var n uint64
	for _, b := range r.Allocated {
		n += b.Size()
	}
	return n
}

// Blocks returns every block in address order.
func (r *Report) Blocks() []Block {
	out := make([]Block, 0, len(r.Allocated)+len(r.Leftover))
	out = append(out, r.Allocated...)
	for i := len(r.Leftover) - 1; i >= 0; i-- {
		out = append(out, r.Leftover[i])
	}
	return out
}
