// Package report renders allocation reports for people and programs.
//
// Three formats are supported:
//
//   - text: a step-by-step derivation showing the parent network, the demands
//     in placement order, each placement as an indented tree line with the
//     address in binary and dotted form, the leftover blocks, and a final
//     summary per subnet.
//   - table: one styled row per block (lipgloss).
//   - json: a document with every derived field per block.
//
// Rendering never changes the report; all derived values (usable range,
// broadcast, mask) are computed from the vlsm.Block at render time.
package report
