package report

import "github.com/firefly-engineering/vlsm-ctl/internal/vlsm"

// Document is the JSON form of a report.
type Document struct {
	Network  string       `json:"network"`
	Prefix   int          `json:"prefix"`
	Capacity uint64       `json:"capacity"`
	Used     uint64       `json:"used"`
	Subnets  []BlockEntry `json:"subnets"`
	Leftover []BlockEntry `json:"leftover"`
}

// BlockEntry carries a block with every derived field.
type BlockEntry struct {
	Ordinal       int    `json:"ordinal"`
	Name          string `json:"name,omitempty"`
	Hosts         int    `json:"hosts,omitempty"`
	Network       string `json:"network"`
	NetworkBinary string `json:"networkBinary"`
	Prefix        int    `json:"prefix"`
	FirstUsable   string `json:"firstUsable"`
	LastUsable    string `json:"lastUsable"`
	Broadcast     string `json:"broadcast"`
	Mask          string `json:"mask"`
	Size          uint64 `json:"size"`
}

// NewDocument builds the JSON view of r.
func NewDocument(r *vlsm.Report) Document {
	doc := Document{
		Network:  r.Base.String(),
		Prefix:   int(r.BasePrefix),
		Capacity: r.Capacity(),
		Used:     r.Used(),
		Subnets:  make([]BlockEntry, 0, len(r.Allocated)),
		Leftover: make([]BlockEntry, 0, len(r.Leftover)),
	}
	for _, b := range r.Allocated {
		doc.Subnets = append(doc.Subnets, entry(b))
	}
	for _, b := range r.Leftover {
		doc.Leftover = append(doc.Leftover, entry(b))
	}
	return doc
}

func entry(b vlsm.Block) BlockEntry {
	e := BlockEntry{
		Ordinal:       b.Ordinal,
		Network:       b.Network.String(),
		NetworkBinary: b.Network.Binary(),
		Prefix:        int(b.Prefix),
		FirstUsable:   b.FirstUsable().String(),
		LastUsable:    b.LastUsable().String(),
		Broadcast:     b.Broadcast().String(),
		Mask:          b.Mask().String(),
		Size:          b.Size(),
	}
	if b.Demand != nil {
		e.Name = b.Demand.Name
		e.Hosts = b.Demand.Hosts
	}
	return e
}
