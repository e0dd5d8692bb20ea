// Package units resolves SVG length strings ("12px", "1.5in", "50%") into
// EMU (English Metric Units, PowerPoint's native coordinate unit), per
// spec.md §4.2's unit table. It is grounded on
// kofi-q-scribe-go/svgbasic.go's parseFloatWithUnit, which strips a
// known unit suffix and applies a fixed conversion factor, generalized
// here from that file's pt-centric table to the EMU-centric one this
// converter needs, with em/ex and percentage resolved against caller
// context rather than left unsupported.
package units
