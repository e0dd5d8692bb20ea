// Package drawingml walks a parsed SVG command sequence and emits the
// PowerPoint DrawingML XML fragment it describes, per spec.md §4.4.
//
// The walker is grounded on the teacher's svg/writer.go PathToSVG: a pen
// position carried across the command list, with straight segments and
// curves distinguished as they're visited and written out through a
// strings.Builder as they're found, rather than building an intermediate
// tree first. original_source/core/paths/drawingml_generator.py supplies
// the per-command-type dispatch table this package generalizes
// PathToSVG's single "is this a line" test into, along with the S/T
// smooth-curve reflection state and generate_shape_xml's styling rules.
//
// Every attribute value is written through a small internal xmlbuilder
// using encoding/xml.EscapeText, so no SVG style string or caller-supplied
// shape name can break out of an attribute value.
package drawingml
