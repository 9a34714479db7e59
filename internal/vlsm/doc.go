// Package vlsm computes Variable-Length Subnet Mask allocation plans.
//
// Given a base IPv4 network and a list of named host demands, Allocate carves
// the base space into the smallest subnets that satisfy each demand and
// reports the unused remainder as maximal power-of-two blocks.
//
// # Allocation
//
//	report, err := vlsm.Allocate("192.168.0.0", 24, []vlsm.Demand{
//	    {Name: "A", Hosts: 100},
//	    {Name: "B", Hosts: 50},
//	    {Name: "C", Hosts: 25},
//	})
//	// A -> 192.168.0.0/25, B -> 192.168.0.128/26, C -> 192.168.0.192/27
//	// leftover: 192.168.0.224/27
//
// Demands are placed largest first (stable on ties). Each block starts where
// the previous one ended, so blocks are contiguous but are not re-aligned to
// the natural boundary of their own prefix. This mirrors the behaviour users
// of the tool expect and is kept on purpose.
//
// # Leftover Space
//
// Space left after placement is split greedily by the highest set bit of the
// remaining address count. Report.Leftover lists those blocks from the
// highest address down to the lowest.
//
// # Errors
//
// Failures wrap one of two sentinels so callers can tell them apart:
//
//	errors.Is(err, vlsm.ErrInvalidInput)     // malformed address, prefix, demand
//	errors.Is(err, vlsm.ErrCapacityExceeded) // demands do not fit the base network
//
// All functions are pure and safe for concurrent use.
package vlsm
