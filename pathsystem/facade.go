package pathsystem

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/svg2pptx/pathcore/arc"
	"github.com/svg2pptx/pathcore/drawingml"
	"github.com/svg2pptx/pathcore/pathdata"
	"github.com/svg2pptx/pathcore/space"
	"github.com/svg2pptx/pathcore/units"
	"github.com/svg2pptx/pathcore/viewport"
)

// Stage identifies which pipeline step a PathProcessingError failed in.
type Stage uint8

const (
	StageParse Stage = iota
	StageBounds
	StageXML
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageBounds:
		return "bounds"
	case StageXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ErrNotConfigured is returned by ProcessPath, wrapped in a
// PathProcessingError, when ConfigureViewport has not yet been called.
// ValidatePathData does not need a configured viewport.
var ErrNotConfigured = errors.New("pathsystem: ConfigureViewport must be called before processing paths")

// PathProcessingError is the umbrella error spec.md §7 names: it carries
// the failing stage alongside the underlying cause, so callers can branch
// on Stage without parsing an error string, and errors.As/errors.Is still
// reach the wrapped pathdata/arc/drawingml error.
type PathProcessingError struct {
	Stage Stage
	Cause error
}

func (e *PathProcessingError) Error() string {
	return fmt.Sprintf("pathsystem: %s stage failed: %v", e.Stage, e.Cause)
}

func (e *PathProcessingError) Unwrap() error { return e.Cause }

// ProcessingStats is a snapshot of the facade's cumulative, atomically
// updated counters, taken at the end of a ProcessPath call.
type ProcessingStats struct {
	PathsProcessed    int64
	PathsFailed       int64
	ArcsConverted     uint64
	SegmentsGenerated uint64
	MaxChordError     float64
}

// PathProcessingResult is the output of one ProcessPath call.
type PathProcessingResult struct {
	PathXML  string
	ShapeXML string
	Bounds   space.EMUBounds
	Commands []pathdata.Command
	Duration time.Duration
	Stats    ProcessingStats
}

// PathSpec is one item of a ProcessMultiplePaths batch.
type PathSpec struct {
	D     string
	Style *drawingml.Style
}

// PathOutcome pairs a batch item's result with its error (nil on success),
// keeping result[i] aligned with input[i] even when some items fail.
type PathOutcome struct {
	Result PathProcessingResult
	Err    error
}

// PathSystem is the configure-then-use facade spec.md §4.5 describes. The
// zero value is not usable; construct with NewPathSystem. A configured
// PathSystem's ProcessPath/ProcessMultiplePaths take no lock and allocate
// no shared mutable state, so many goroutines may call them concurrently
// provided none of them call a Configure* method at the same time — the
// same contract the teacher's mp.Engine offers by being built fresh per
// solve and never mutated concurrently.
type PathSystem struct {
	parser    Parser
	coordSys  CoordinateSystem
	generator DrawingMLGenerator
	logger    *slog.Logger

	configured        bool
	mapping           viewport.ViewportMapping
	conversionCtx     units.ConversionContext
	maxSegmentDeg     float64
	errorToleranceEMU float64

	nextShapeID    atomic.Uint32
	pathsProcessed atomic.Int64
	pathsFailed    atomic.Int64
	arcStats       arc.Stats
}

// NewPathSystem constructs an unconfigured facade with the package's
// default parser/coordinate-system/DrawingML-generator collaborators.
func NewPathSystem() *PathSystem {
	return &PathSystem{
		parser:        defaultParser{},
		coordSys:      defaultCoordinateSystem{},
		generator:     defaultDrawingMLGenerator{},
		maxSegmentDeg: 90,
	}
}

// SetLogger attaches a structured logger; nil (the default) disables
// logging entirely rather than falling back to a discard logger, so a
// caller pays nothing for logging it never asked for.
func (ps *PathSystem) SetLogger(logger *slog.Logger) {
	ps.logger = logger
}

// ConfigureViewport establishes the viewport/viewBox mapping and DPI every
// subsequent ProcessPath call uses. Required before any processing;
// calling it again re-derives the mapping from scratch (e.g. for a new
// document), which is safe as long as no ProcessPath call is in flight.
func (ps *PathSystem) ConfigureViewport(viewportW, viewportH float64, viewbox *viewport.ViewBox, preserveAspectRatio string, dpi float64) error {
	mapping, err := ps.coordSys.ComposeViewport(viewportW, viewportH, viewbox, preserveAspectRatio)
	if err != nil {
		return fmt.Errorf("pathsystem: configure viewport: %w", err)
	}

	if dpi <= 0 {
		dpi = 96.0
	}
	ps.mapping = mapping
	ps.conversionCtx = units.ConversionContext{
		ViewportWidthPx:  viewportW,
		ViewportHeightPx: viewportH,
		DPI:              dpi,
		FontSizePx:       units.DefaultConversionContext().FontSizePx,
	}
	ps.configured = true
	if ps.logger != nil {
		ps.logger.Debug("configured viewport", "width", viewportW, "height", viewportH, "dpi", dpi)
	}
	return nil
}

// ConfigureArcQuality overrides arc segmentation granularity and sets the
// chord-error tolerance above which ProcessPath logs a warning.
// maxSegmentDeg outside (10, 180] is clamped to the default of 90.
func (ps *PathSystem) ConfigureArcQuality(maxSegmentDeg, errorToleranceEMU float64) {
	if maxSegmentDeg <= 10 || maxSegmentDeg > 180 {
		maxSegmentDeg = 90
	}
	ps.maxSegmentDeg = maxSegmentDeg
	ps.errorToleranceEMU = errorToleranceEMU
}

// ValidatePathData reports whether d parses as valid path data, without
// keeping the parsed commands.
func (ps *PathSystem) ValidatePathData(d string) bool {
	return ps.parser.Validate(d)
}

// ProcessPath parses d, computes its bounds, and emits DrawingML XML (plus
// a shape fragment if style is non-nil). It requires a prior
// ConfigureViewport call.
func (ps *PathSystem) ProcessPath(d string, style *drawingml.Style) (PathProcessingResult, error) {
	if !ps.configured {
		return PathProcessingResult{}, &PathProcessingError{Stage: StageParse, Cause: ErrNotConfigured}
	}

	start := time.Now()

	commands, err := ps.parser.Parse(d)
	if err != nil {
		ps.pathsFailed.Add(1)
		return PathProcessingResult{}, &PathProcessingError{Stage: StageParse, Cause: err}
	}

	bounds, err := ps.coordSys.CalculatePathBounds(commands, ps.mapping, ps.conversionCtx, ps.maxSegmentDeg, &ps.arcStats)
	if err != nil {
		ps.pathsFailed.Add(1)
		return PathProcessingResult{}, &PathProcessingError{Stage: StageBounds, Cause: err}
	}

	// Recomputing arc segments here is pure and deterministic; stats were
	// already recorded against the CalculatePathBounds pass above, so this
	// second walk passes a nil Stats to avoid double-counting.
	pathXML, err := ps.generator.GeneratePathXML(commands, bounds, ps.mapping, ps.conversionCtx, ps.maxSegmentDeg, nil)
	if err != nil {
		ps.pathsFailed.Add(1)
		return PathProcessingResult{}, &PathProcessingError{Stage: StageXML, Cause: err}
	}

	var shapeXML string
	if style != nil {
		id := ps.nextShapeID.Add(1)
		shapeXML, err = ps.generator.GenerateShapeXML(pathXML, bounds, style, id, ps.conversionCtx)
		if err != nil {
			ps.pathsFailed.Add(1)
			return PathProcessingResult{}, &PathProcessingError{Stage: StageXML, Cause: err}
		}
	}

	ps.pathsProcessed.Add(1)
	elapsed := time.Since(start)

	stats := ps.Stats()
	if ps.logger != nil {
		ps.logger.Debug("processed path", "commands", len(commands), "duration", elapsed)
		if ps.errorToleranceEMU > 0 && stats.MaxChordError > ps.errorToleranceEMU {
			ps.logger.Warn("arc conversion exceeded configured error tolerance",
				"maxChordError", stats.MaxChordError, "tolerance", ps.errorToleranceEMU)
		}
	}

	return PathProcessingResult{
		PathXML:  pathXML,
		ShapeXML: shapeXML,
		Bounds:   bounds,
		Commands: commands,
		Duration: elapsed,
		Stats:    stats,
	}, nil
}

// ProcessMultiplePaths runs ProcessPath over each spec in order. A failing
// item is recorded (counted, and logged if a logger is set) but never
// aborts the batch; result[i] always corresponds to input[i].
func (ps *PathSystem) ProcessMultiplePaths(specs []PathSpec) []PathOutcome {
	outcomes := make([]PathOutcome, len(specs))
	for i, spec := range specs {
		result, err := ps.ProcessPath(spec.D, spec.Style)
		outcomes[i] = PathOutcome{Result: result, Err: err}
		if err != nil && ps.logger != nil {
			ps.logger.Error("path failed in batch", "index", i, "err", err)
		}
	}
	return outcomes
}

// Stats returns a snapshot of the facade's cumulative counters.
func (ps *PathSystem) Stats() ProcessingStats {
	return ProcessingStats{
		PathsProcessed:    ps.pathsProcessed.Load(),
		PathsFailed:       ps.pathsFailed.Load(),
		ArcsConverted:     ps.arcStats.ArcsConverted(),
		SegmentsGenerated: ps.arcStats.SegmentsGenerated(),
		MaxChordError:     ps.arcStats.MaxChordError(),
	}
}
