package pathdata

// Parse tokenizes and validates an SVG path `d` string into a sequence of
// Command values, per spec.md §4.1. Numeric values are preserved verbatim
// (as float64) — no coordinate transformation happens here.
//
// An empty or whitespace-only d returns (nil, nil): spec.md §4.1 specifies
// this as success, not an error. A non-empty d that does not begin with
// M/m fails with ErrMustStartWithMoveTo.
func Parse(d string) ([]Command, error) {
	s := newScanner(d)
	s.skipSeparators()
	if s.atEnd() {
		return nil, nil
	}

	var commands []Command
	var prevKind Kind
	var prevRelative bool
	havePrev := false

	for {
		s.skipSeparators()
		if s.atEnd() {
			break
		}

		var kind Kind
		var relative bool
		var letter byte

		if isCommandLetter(s.peekByte()) {
			letter = s.readCommandLetter()
			kind, _ = kindForLetter(letter)
			relative = letter >= 'a' && letter <= 'z'
		} else {
			if !havePrev {
				return nil, &ParseError{
					Kind:     ErrMustStartWithMoveTo,
					Offset:   0,
					Expected: "M or m",
					Found:    string(s.peekByte()),
				}
			}
			// ClosePath takes no arguments and has no implicit-repeat
			// form: a number here is a syntax error, not a repetition,
			// matching the reference parser's "number where a command
			// was expected" failure. Without this check, a stray number
			// after Z would repeat ClosePath forever without ever
			// advancing s.pos.
			if prevKind == ClosePath {
				return nil, &ParseError{
					Kind:     ErrUnexpectedNumber,
					Offset:   s.pos,
					Expected: "a command letter",
					Found:    string(s.peekByte()),
				}
			}
			// Implicit repetition: a bare argument run after a command
			// repeats it, except that MoveTo's repeats are LineTo (spec.md §4.1).
			kind = prevKind
			relative = prevRelative
			if kind == MoveTo {
				kind = LineTo
			}
			letter = letterFor(kind, relative)
		}

		if !havePrev && kind != MoveTo {
			return nil, &ParseError{
				Kind:     ErrMustStartWithMoveTo,
				Offset:   0,
				Expected: "M or m",
				Found:    string(letter),
			}
		}

		cmd, err := parseParams(s, kind, relative, letter)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)

		prevKind = kind
		prevRelative = relative
		havePrev = true
	}

	return commands, nil
}

// Validate reports whether d parses without error, per spec.md §4.5's
// validate_path_data contract: Validate(d) == (Parse(d) succeeding).
func Validate(d string) bool {
	_, err := Parse(d)
	return err == nil
}

// requireNumber reads one number, reporting ErrInsufficientParameters (not
// ErrInvalidNumber) when the argument run simply ran out of input — the
// distinction spec.md §4.1 draws between "too few parameters" and "a
// malformed numeric token".
func requireNumber(s *scanner) (float64, error) {
	s.skipSeparators()
	if s.atEnd() {
		return 0, &ParseError{Kind: ErrInsufficientParameters, Offset: s.pos, Expected: "a number", Found: ""}
	}
	v, _, err := s.readNumber()
	return v, err
}

// requireFlag is requireNumber's counterpart for arc flag arguments.
func requireFlag(s *scanner) (bool, error) {
	s.skipSeparators()
	if s.atEnd() {
		return false, &ParseError{Kind: ErrInsufficientParameters, Offset: s.pos, Expected: "0 or 1", Found: ""}
	}
	v, _, err := s.readFlag()
	return v, err
}

// parseParams reads the parameter list for one command occurrence from s
// and builds its strongly-typed Params value.
func parseParams(s *scanner, kind Kind, relative bool, letter byte) (Command, error) {
	switch kind {
	case MoveTo:
		x, y, err := readXY(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: MoveToParams{X: x, Y: y}}, nil

	case LineTo:
		x, y, err := readXY(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: LineToParams{X: x, Y: y}}, nil

	case Horizontal:
		x, err := requireNumber(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: HorizontalParams{X: x}}, nil

	case Vertical:
		y, err := requireNumber(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: VerticalParams{Y: y}}, nil

	case CubicCurve:
		vals, err := readN(s, 6)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: CubicParams{
			X1: vals[0], Y1: vals[1], X2: vals[2], Y2: vals[3], X: vals[4], Y: vals[5],
		}}, nil

	case SmoothCubic:
		vals, err := readN(s, 4)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: SmoothCubicParams{
			X2: vals[0], Y2: vals[1], X: vals[2], Y: vals[3],
		}}, nil

	case Quadratic:
		vals, err := readN(s, 4)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: QuadraticParams{
			X1: vals[0], Y1: vals[1], X: vals[2], Y: vals[3],
		}}, nil

	case SmoothQuad:
		x, y, err := readXY(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: SmoothQuadParams{X: x, Y: y}}, nil

	case Arc:
		rx, err := requireNumber(s)
		if err != nil {
			return Command{}, err
		}
		ry, err := requireNumber(s)
		if err != nil {
			return Command{}, err
		}
		rot, err := requireNumber(s)
		if err != nil {
			return Command{}, err
		}
		largeArc, err := requireFlag(s)
		if err != nil {
			return Command{}, err
		}
		sweep, err := requireFlag(s)
		if err != nil {
			return Command{}, err
		}
		x, y, err := readXY(s)
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: ArcParams{
			RX: rx, RY: ry, XAxisRotationDeg: rot, LargeArc: largeArc, Sweep: sweep, X: x, Y: y,
		}}, nil

	case ClosePath:
		return Command{Kind: kind, Relative: relative, Letter: letter, Params: CloseParams{}}, nil

	default:
		return Command{}, &ParseError{Kind: ErrUnknownCommand, Offset: s.pos, Expected: "a known command", Found: string(letter)}
	}
}

func readXY(s *scanner) (x, y float64, err error) {
	x, err = requireNumber(s)
	if err != nil {
		return 0, 0, err
	}
	y, err = requireNumber(s)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func readN(s *scanner, n int) ([]float64, error) {
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := requireNumber(s)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
