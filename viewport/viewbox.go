package viewport

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Align identifies how the viewBox is centered along one axis when
// preserveAspectRatio's meet/slice scale leaves slack space, per SVG §7.11's
// xMin/xMid/xMax (and yMin/yMid/yMax) alignment keywords.
type Align uint8

const (
	AlignMin Align = iota
	AlignMid
	AlignMax
)

// factor returns the 0/0.5/1 alignment fraction spec.md §4.2 names.
func (a Align) factor() float64 {
	switch a {
	case AlignMid:
		return 0.5
	case AlignMax:
		return 1
	default:
		return 0
	}
}

// MeetOrSlice selects how scale_x/scale_y are reconciled into one uniform
// scale when preserveAspectRatio isn't "none".
type MeetOrSlice uint8

const (
	Meet MeetOrSlice = iota
	Slice
)

// ViewBox is an SVG `viewBox="min-x min-y width height"` rectangle.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ViewportMapping is the resolved (viewbox_origin, scale, align, meet/slice)
// tuple spec.md §3 names, ready to be turned into a single Transform.
type ViewportMapping struct {
	ViewBoxOriginX, ViewBoxOriginY float64
	ScaleX, ScaleY                 float64
	AlignX, AlignY                 Align
	MeetOrSlice                    MeetOrSlice
	PreserveAspectRatio            bool

	viewportW, viewportH float64
	viewboxW, viewboxH   float64
}

// ComposeViewport implements SVG §7's viewBox/preserveAspectRatio
// composition. viewbox is nil when the element has no viewBox attribute, in
// which case the mapping is an identity scale over the viewport itself.
// preserveAspectRatio is the raw attribute value (e.g. "xMidYMid meet",
// "xMinYMax slice", "none"); an empty string defaults to "xMidYMid meet".
func ComposeViewport(viewportW, viewportH float64, viewbox *ViewBox, preserveAspectRatio string) (ViewportMapping, error) {
	if viewportW <= 0 || viewportH <= 0 {
		return ViewportMapping{}, fmt.Errorf("viewport: viewport dimensions must be positive, got %gx%g", viewportW, viewportH)
	}

	vb := ViewBox{Width: viewportW, Height: viewportH}
	if viewbox != nil {
		vb = *viewbox
	}
	if vb.Width <= 0 || vb.Height <= 0 {
		return ViewportMapping{}, fmt.Errorf("viewport: viewBox dimensions must be positive, got %gx%g", vb.Width, vb.Height)
	}

	alignX, alignY, meetOrSlice, preserve, err := parsePreserveAspectRatio(preserveAspectRatio)
	if err != nil {
		return ViewportMapping{}, err
	}

	scaleX := viewportW / vb.Width
	scaleY := viewportH / vb.Height
	if preserve {
		uniform := math.Min(scaleX, scaleY)
		if meetOrSlice == Slice {
			uniform = math.Max(scaleX, scaleY)
		}
		scaleX, scaleY = uniform, uniform
	}

	return ViewportMapping{
		ViewBoxOriginX:       vb.MinX,
		ViewBoxOriginY:       vb.MinY,
		ScaleX:               scaleX,
		ScaleY:               scaleY,
		AlignX:               alignX,
		AlignY:               alignY,
		MeetOrSlice:          meetOrSlice,
		PreserveAspectRatio:  preserve,
		viewportW:            viewportW,
		viewportH:            viewportH,
		viewboxW:             vb.Width,
		viewboxH:             vb.Height,
	}, nil
}

// Transform returns the single affine map from viewBox user-space
// coordinates to viewport coordinates that this mapping describes:
// translate the viewBox origin to zero, scale, then center any leftover
// slack per the alignment factors.
func (m ViewportMapping) Transform() Transform {
	slackX := m.viewportW - m.viewboxW*m.ScaleX
	slackY := m.viewportH - m.viewboxH*m.ScaleY

	return Shifted(-m.ViewBoxOriginX, -m.ViewBoxOriginY).
		Then(Scaled(m.ScaleX, m.ScaleY)).
		Then(Shifted(slackX*m.AlignX.factor(), slackY*m.AlignY.factor()))
}

func parsePreserveAspectRatio(raw string) (alignX, alignY Align, mos MeetOrSlice, preserve bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return AlignMid, AlignMid, Meet, true, nil
	}

	fields := strings.Fields(s)
	align := fields[0]
	if align == "none" {
		return AlignMin, AlignMin, Meet, false, nil
	}

	mos = Meet
	if len(fields) > 1 && fields[1] == "slice" {
		mos = Slice
	}

	alignX, alignY, ok := parseAlignKeyword(align)
	if !ok {
		return 0, 0, 0, false, fmt.Errorf("viewport: unrecognized preserveAspectRatio alignment %q", align)
	}
	return alignX, alignY, mos, true, nil
}

func parseAlignKeyword(s string) (x, y Align, ok bool) {
	switch s {
	case "xMinYMin":
		return AlignMin, AlignMin, true
	case "xMidYMin":
		return AlignMid, AlignMin, true
	case "xMaxYMin":
		return AlignMax, AlignMin, true
	case "xMinYMid":
		return AlignMin, AlignMid, true
	case "xMidYMid":
		return AlignMid, AlignMid, true
	case "xMaxYMid":
		return AlignMax, AlignMid, true
	case "xMinYMax":
		return AlignMin, AlignMax, true
	case "xMidYMax":
		return AlignMid, AlignMax, true
	case "xMaxYMax":
		return AlignMax, AlignMax, true
	default:
		return 0, 0, false
	}
}

// ParseViewBoxAttribute parses a raw `viewBox="min-x min-y width height"`
// attribute value.
func ParseViewBoxAttribute(attr string) (ViewBox, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("viewport: viewBox must have 4 values, got %d", len(fields))
	}
	vals := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("viewport: invalid viewBox value %q: %w", f, err)
		}
		vals[i] = v
	}
	return ViewBox{MinX: vals[0], MinY: vals[1], Width: vals[2], Height: vals[3]}, nil
}
