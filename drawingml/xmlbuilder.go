package drawingml

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// attr is one XML attribute name/value pair, written through escapeAttr
// before it ever reaches a builder's Builder.
type attr struct {
	Name  string
	Value string
}

// escapeAttr runs s through encoding/xml.EscapeText so a style string or
// caller-supplied name can never inject markup into an attribute value.
func escapeAttr(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// builder accumulates an XML fragment one element at a time. It favors a
// flat, streaming style over an in-memory tree, mirroring the teacher's
// PathToSVG walker, which writes straight to a strings.Builder as it visits
// each knot rather than constructing a DOM first.
type builder struct {
	strings.Builder
}

// openTag writes "<prefix:tag attr="val" ...>" with no self-close.
func (b *builder) openTag(tag string, attrs ...attr) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.writeAttrs(attrs)
	b.WriteByte('>')
}

// closeTag writes "</prefix:tag>".
func (b *builder) closeTag(tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// selfClosingTag writes "<prefix:tag attr="val" .../>".
func (b *builder) selfClosingTag(tag string, attrs ...attr) {
	b.WriteByte('<')
	b.WriteString(tag)
	b.writeAttrs(attrs)
	b.WriteString("/>")
}

func (b *builder) writeAttrs(attrs []attr) {
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
}

// writePoint writes "<a:pt x="…" y="…"/>" for a normalized coordinate pair.
func (b *builder) writePoint(x, y float64) {
	b.selfClosingTag("a:pt", attr{"x", formatCoordinate(x)}, attr{"y", formatCoordinate(y)})
}

// formatCoordinate renders a normalized coordinate as the integer
// DrawingML's ST_Coordinate attribute type requires, rounding rather than
// truncating so half-unit bias doesn't accumulate across a long path.
func formatCoordinate(v float64) string {
	rounded := int64(v + sign(v)*0.5)
	return strconv.FormatInt(rounded, 10)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// intAttr renders an integer-valued attribute, e.g. EMU offsets and
// extents, which are always whole numbers.
func intAttr(name string, v int64) attr {
	return attr{name, strconv.FormatInt(v, 10)}
}
