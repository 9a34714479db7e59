package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

// FreeLabel names leftover blocks in tables.
const FreeLabel = "(free)"

var tableHeaders = []string{"#", "NAME", "NETWORK", "BINARY", "PREFIX", "FIRST", "LAST", "BROADCAST", "MASK"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	freeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	plainStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// Rows returns one string row per block: demand blocks in placement order,
// then leftover blocks in reported order.
func Rows(r *vlsm.Report) [][]string {
	rows := make([][]string, 0, len(r.Allocated)+len(r.Leftover))
	for _, b := range r.Allocated {
		rows = append(rows, row(b))
	}
	for _, b := range r.Leftover {
		rows = append(rows, row(b))
	}
	return rows
}

func row(b vlsm.Block) []string {
	name := b.Name()
	if b.IsLeftover() {
		name = FreeLabel
	}
	return []string{
		strconv.Itoa(b.Ordinal),
		name,
		b.Network.String(),
		b.Network.Binary(),
		"/" + strconv.Itoa(int(b.Prefix)),
		b.FirstUsable().String(),
		b.LastUsable().String(),
		b.Broadcast().String(),
		b.Mask().String(),
	}
}

// Table renders the blocks as a bordered table. With color off, no ANSI
// sequences are emitted.
func Table(r *vlsm.Report, color bool) string {
	rows := Rows(r)
	leftoverFrom := len(r.Allocated)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case !color:
				return plainStyle
			case row == table.HeaderRow:
				return headerStyle
			case row >= leftoverFrom:
				return freeStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
