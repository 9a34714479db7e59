// Package request turns user input into allocator calls.
//
// It accepts the forms vlsm-ctl users type: a CIDR such as
// "192.168.0.0/24", the comma-separated name and host lists of the web form
// the tool grew out of, and name=hosts tokens, optionally shell-quoted on a
// single line. Every parse failure wraps vlsm.ErrInvalidInput.
package request

import (
	"fmt"
	"strconv"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// Request is a base network plus the demands to place in it.
type Request struct {
	Network string
	Demands []vlsm.Demand
}

// Validate checks the network parses and every demand is well formed.
func (r *Request) Validate() error {
	if _, _, err := ParseCIDR(r.Network); err != nil {
		return err
	}
	if len(r.Demands) == 0 {
		return fmt.Errorf("%w: at least one demand is required", vlsm.ErrInvalidInput)
	}
	for _, d := range r.Demands {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Allocate runs the allocator for the request.
func (r *Request) Allocate() (*vlsm.Report, error) {
	base, prefix, err := ParseCIDR(r.Network)
	if err != nil {
		return nil, err
	}
	return vlsm.AllocateNetwork(base, prefix, r.Demands)
}

// ParseCIDR splits "a.b.c.d/n" into address and prefix length. The address
// is kept as written; host bits are not cleared.
func ParseCIDR(s string) (vlsm.Address, vlsm.PrefixLength, error) {
	addrPart, prefixPart, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return 0, 0, fmt.Errorf("%w: network %q must be written as address/prefix", vlsm.ErrInvalidInput, s)
	}
	addr, err := vlsm.ParseAddress(addrPart)
	if err != nil {
		return 0, 0, err
	}
	prefix, err := ParsePrefix(prefixPart)
	if err != nil {
		return 0, 0, err
	}
	return addr, prefix, nil
}

// ParsePrefix parses a prefix length, with or without a leading slash.
func ParsePrefix(s string) (vlsm.PrefixLength, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "/")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: prefix length %q is not a number", vlsm.ErrInvalidInput, s)
	}
	p := vlsm.PrefixLength(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: prefix length %d out of range [0,32]", vlsm.ErrInvalidInput, n)
	}
	return p, nil
}

// ParseLists pairs comma-separated names with comma-separated host counts,
// position by position.
func ParseLists(names, hosts string) ([]vlsm.Demand, error) {
	nameList := splitList(names)
	hostList := splitList(hosts)
	if len(hostList) == 0 {
		return nil, fmt.Errorf("%w: no host counts given", vlsm.ErrInvalidInput)
	}
	if len(nameList) != len(hostList) {
		return nil, fmt.Errorf("%w: %d names for %d host counts", vlsm.ErrInvalidInput, len(nameList), len(hostList))
	}

	demands := make([]vlsm.Demand, 0, len(hostList))
	for i := range hostList {
		d, err := newDemand(nameList[i], hostList[i])
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}
	return demands, nil
}

// ParseTokens parses name=hosts tokens. A colon may be used instead of '='.
// The last separator wins, so names may themselves contain '=' or ':'.
func ParseTokens(tokens []string) ([]vlsm.Demand, error) {
	demands := make([]vlsm.Demand, 0, len(tokens))
	for _, tok := range tokens {
		i := strings.LastIndexAny(tok, "=:")
		if i < 0 {
			return nil, fmt.Errorf("%w: demand %q must be written as name=hosts", vlsm.ErrInvalidInput, tok)
		}
		d, err := newDemand(tok[:i], tok[i+1:])
		if err != nil {
			return nil, err
		}
		demands = append(demands, d)
	}
	return demands, nil
}

// ParseLine splits line with shell quoting rules and parses the tokens,
// e.g. `"Sales floor"=40 lab=12`.
func ParseLine(line string) ([]vlsm.Demand, error) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", vlsm.ErrInvalidInput, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: at least one demand is required", vlsm.ErrInvalidInput)
	}
	return ParseTokens(tokens)
}

// FormatLine is the inverse of ParseLine.
func FormatLine(demands []vlsm.Demand) string {
	tokens := make([]string, len(demands))
	for i, d := range demands {
		tokens[i] = fmt.Sprintf("%s=%d", d.Name, d.Hosts)
	}
	return shellquote.Join(tokens...)
}

func newDemand(name, hosts string) (vlsm.Demand, error) {
	name = strings.TrimSpace(name)
	hosts = strings.TrimSpace(hosts)
	n, err := strconv.Atoi(hosts)
	if err != nil {
		return vlsm.Demand{}, fmt.Errorf("%w: host count %q for %q is not a number", vlsm.ErrInvalidInput, hosts, name)
	}
	d := vlsm.Demand{Name: name, Hosts: n}
	if err := d.Validate(); err != nil {
		return vlsm.Demand{}, err
	}
	return d, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
