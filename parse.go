package drafting

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	return f, i + n
}

// ParsePath parses the textual path form as emitted by Path.String: M x y
// starts a segment, L x y appends a line, A x1 y1 x2 y2 an arc through
// (x1,y1) ending in (x2,y2), C x1 y1 x2 y2 x3 y3 a cubic Bézier and Z a
// closing line. Coordinates are absolute and separated by spaces or
// commas, and a command letter may be omitted to repeat the previous
// command.
func ParsePath(sPath string) (*Path, error) {
	path := []byte(sPath)
	p := &Path{}

	var prevCmd byte
	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		}

		var err error
		switch cmd {
		case 'M':
			a, n := parseNum(path[i:])
			i += n
			b, n := parseNum(path[i:])
			i += n
			err = p.MoveTo(a, b)
		case 'L':
			a, n := parseNum(path[i:])
			i += n
			b, n := parseNum(path[i:])
			i += n
			err = p.LineTo(a, b)
		case 'A':
			a, n := parseNum(path[i:])
			i += n
			b, n := parseNum(path[i:])
			i += n
			c, n := parseNum(path[i:])
			i += n
			d, n := parseNum(path[i:])
			i += n
			err = p.ArcTo(a, b, c, d)
		case 'C':
			a, n := parseNum(path[i:])
			i += n
			b, n := parseNum(path[i:])
			i += n
			c, n := parseNum(path[i:])
			i += n
			d, n := parseNum(path[i:])
			i += n
			e, n := parseNum(path[i:])
			i += n
			f, n := parseNum(path[i:])
			i += n
			err = p.CurveTo(a, b, c, d, e, f)
		case 'Z':
			err = p.Close()
		default:
			return nil, fmt.Errorf("unknown path command '%c' at position %d", cmd, i)
		}
		if err != nil {
			return nil, err
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(sPath string) *Path {
	p, err := ParsePath(sPath)
	if err != nil {
		panic(err)
	}
	return p
}

func (prim Primitive) string(sb *strings.Builder) {
	switch prim.Kind {
	case LineKind:
		fmt.Fprintf(sb, "L%g %g", prim.P[0].X, prim.P[0].Y)
	case ArcKind:
		fmt.Fprintf(sb, "A%g %g %g %g", prim.P[0].X, prim.P[0].Y, prim.P[1].X, prim.P[1].Y)
	case CurveKind:
		fmt.Fprintf(sb, "C%g %g %g %g %g %g", prim.P[0].X, prim.P[0].Y, prim.P[1].X, prim.P[1].Y, prim.P[2].X, prim.P[2].Y)
	case CloseKind:
		sb.WriteByte('Z')
	}
}

func (prim Primitive) String() string {
	sb := strings.Builder{}
	prim.string(&sb)
	return sb.String()
}

func (seg Segment) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "M%g %g", seg.Start.X, seg.Start.Y)
	for _, prim := range seg.Prims {
		prim.string(&sb)
	}
	return sb.String()
}

// String returns the textual path form accepted by ParsePath. Segments
// without primitives are skipped.
func (p *Path) String() string {
	sb := strings.Builder{}
	for _, seg := range p.segs {
		if len(seg.Prims) == 0 {
			continue
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}
