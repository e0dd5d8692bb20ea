// Package pathdata tokenizes an SVG path `d` attribute into a validated
// sequence of Command values, preserving every numeric token exactly as
// written (no coordinate-space transformation happens here — that is
// package viewport's job).
//
// Grounded on original_source/core/paths/parser.py for the command table,
// arity table and implicit-command expansion rules, and on
// kofi-q-scribe-go/svgbasic.go's command/number separator-insertion idea,
// generalized here into a character-level scanner (scanner.go) so that arc
// flags can be read as single 0/1 digits rather than general floats — the
// reference Python parser doesn't special-case flags, which spec.md §4.1
// calls out as a correction this implementation makes.
//
// Commands are represented as a tagged struct (Command) holding one of ten
// strongly-typed per-variant parameter records, never a flat []float64 —
// spec.md §9 names the flat-list representation as "the source of most
// bugs in the reference code" and asks for it to be rejected.
package pathdata
