package report

import (
	"fmt"
	"strings"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

const separator = "--------------------------"

// Text renders the step-by-step derivation of the plan.
func Text(r *vlsm.Report) string {
	var b strings.Builder

	b.WriteString("SUBNETTING VLSM\n\n")

	b.WriteString("Parent network\n")
	fmt.Fprintf(&b, "%s | %s/%d\n\n", r.Base.Binary(), r.Base, r.BasePrefix)

	b.WriteString("Hosts per LAN\n")
	for _, d := range r.Demands {
		fmt.Fprintf(&b, "%s %d\n", d.Name, d.Hosts)
	}
	b.WriteString("\n")

	for _, blk := range r.Allocated {
		fmt.Fprintf(&b, "%s%s | %s/%d\n",
			indent(blk.Ordinal), blk.Network.Binary(), blk.Network, r.BasePrefix)
		fmt.Fprintf(&b, "%s%s | %s <- %s\n",
			indent(blk.Ordinal+1), blk.Network.Binary(), blk.CIDR(), blk.Name())
	}

	if len(r.Leftover) > 0 {
		b.WriteString("\nLeftover subnets:\n")
		for _, blk := range r.Leftover {
			fmt.Fprintf(&b, "%s%s | %s\n", indent(len(r.Allocated)), blk.Network.Binary(), blk.CIDR())
		}
	}

	b.WriteString("\nFINAL SUBNET RESULTS\n")
	for _, blk := range r.Allocated {
		fmt.Fprintf(&b, "Subnet: %s\n", blk.Name())
		fmt.Fprintf(&b, "  Network: %s\n", blk.Network)
		fmt.Fprintf(&b, "  First usable: %s\n", blk.FirstUsable())
		fmt.Fprintf(&b, "  Last usable: %s\n", blk.LastUsable())
		fmt.Fprintf(&b, "  Broadcast: %s\n", blk.Broadcast())
		fmt.Fprintf(&b, "  Mask: /%d (%s)\n", blk.Prefix, blk.Mask())
		b.WriteString(separator + "\n")
	}

	return b.String()
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}
