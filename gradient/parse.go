package gradient

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse failures. Callers route on these with errors.Is to decide
// between aborting and the solid-color fallback.
var (
	ErrNotGradient = errors.New("not a recognized gradient expression")
	ErrTooFewStops = errors.New("gradient needs at least two color stops")
)

// ParseError decorates a parse failure with the offending expression.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %s", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	// #RRGGBB or #RRGGBBAA followed by an integer percentage.
	// Decimal or signed percentages do not match: such stops are
	// skipped rather than rounded.
	stopRe = regexp.MustCompile(`(?i)#([0-9a-f]{6})([0-9a-f]{2})?\s+(\d+)%`)

	angleRe = regexp.MustCompile(`(?i)^(-?\d+(?:\.\d+)?)(?:deg)?$`)

	hexRe = regexp.MustCompile(`(?i)#[0-9a-f]{6}`)
)

// Parse converts a CSS gradient expression into a Gradient.
// Exactly the linear-gradient(...) and radial-gradient(...) forms are
// recognized; anything else fails with ErrNotGradient, and a gradient
// with fewer than two well-formed stops fails with ErrTooFewStops.
// Both failures come wrapped in a *ParseError.
//
// Parsing is deterministic and touches nothing outside its input.
func Parse(input string) (*Gradient, error) {
	kind, args, ok := splitCall(strings.TrimSpace(input))
	if !ok {
		return nil, &ParseError{Input: input, Err: ErrNotGradient}
	}

	g := &Gradient{Kind: kind}
	if kind == Linear {
		g.Angle = DefaultAngle
		head, rest, hasComma := strings.Cut(args, ",")
		head = strings.TrimSpace(head)
		if deg, ok := parseAngle(head); ok {
			g.Angle = deg
			if hasComma {
				args = rest
			} else {
				args = ""
			}
		} else if head != "" && !strings.Contains(head, "#") {
			// Keyword directions like "to right" were never part of
			// the supported grammar.
			g.Warnings = append(g.Warnings,
				fmt.Sprintf("unsupported direction %q, falling back to the default angle", head))
		}
	}

	for _, m := range stopRe.FindAllStringSubmatch(args, -1) {
		c, err := ParseHex("#" + m[1])
		if err != nil {
			continue
		}
		if m[2] != "" {
			g.Warnings = append(g.Warnings,
				fmt.Sprintf("stop #%s%s: alpha channel ignored", m[1], m[2]))
		}
		pct, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		g.Stops = append(g.Stops, Stop{Color: c, Position: float64(pct) / 100})
	}
	if len(g.Stops) < 2 {
		return nil, &ParseError{Input: input, Err: ErrTooFewStops}
	}
	return g, nil
}

// DominantColor extracts the first plain hex color found anywhere in
// s. It backs the solid-color fallback for expressions Parse rejects.
func DominantColor(s string) (Color, bool) {
	m := hexRe.FindString(s)
	if m == "" {
		return Color{}, false
	}
	c, err := ParseHex(m)
	if err != nil {
		return Color{}, false
	}
	return c, true
}

// splitCall matches a name(args) call against the two supported
// gradient functions. Case is ignored, as CSS function names are
// case-insensitive.
func splitCall(expr string) (Kind, string, bool) {
	open := strings.IndexByte(expr, '(')
	if open < 0 || !strings.HasSuffix(expr, ")") {
		return 0, "", false
	}
	args := expr[open+1 : len(expr)-1]
	switch strings.ToLower(strings.TrimSpace(expr[:open])) {
	case "linear-gradient":
		return Linear, args, true
	case "radial-gradient":
		return Radial, args, true
	}
	return 0, "", false
}

// parseAngle reads a bare CSS angle: a number with an optional deg
// unit and nothing else.
func parseAngle(tok string) (float64, bool) {
	m := angleRe.FindStringSubmatch(tok)
	if m == nil {
		return 0, false
	}
	deg, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return deg, true
}
