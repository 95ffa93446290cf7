package scene

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/vgbridge"
)

// ParsePathData converts SVG-style path data into bulk path verbs and
// points. Supported commands are M, L, Q, C and Z in absolute (upper case)
// and relative (lower case) form. Extra coordinate pairs after M or m are
// treated as line segments, as in SVG.
func ParsePathData(d string) ([]vgbridge.Vec2D, []vgbridge.PathVerb, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, nil, err
	}

	var (
		points       []vgbridge.Vec2D
		verbs        []vgbridge.PathVerb
		cur, start   vgbridge.Vec2D
		cmd          byte
		i            int
		contourStart bool
	)

	next := func() (float32, error) {
		if i >= len(toks) || toks[i].cmd != 0 {
			return 0, fmt.Errorf("scene: path data: command %q needs more numbers", cmd)
		}
		v := toks[i].num
		i++
		return v, nil
	}
	pt := func(rel bool) (vgbridge.Vec2D, error) {
		x, err := next()
		if err != nil {
			return vgbridge.Vec2D{}, err
		}
		y, err := next()
		if err != nil {
			return vgbridge.Vec2D{}, err
		}
		if rel {
			x += cur.X
			y += cur.Y
		}
		return vgbridge.Vec2D{X: x, Y: y}, nil
	}

	for i < len(toks) {
		if c := toks[i].cmd; c != 0 {
			cmd = c
			i++
			contourStart = cmd == 'M' || cmd == 'm'
		} else if cmd == 0 {
			return nil, nil, fmt.Errorf("scene: path data must start with a command")
		}

		rel := cmd >= 'a'
		switch cmd {
		case 'M', 'm':
			p, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			if contourStart {
				verbs = append(verbs, vgbridge.VerbMove)
				start = p
				contourStart = false
			} else {
				verbs = append(verbs, vgbridge.VerbLine)
			}
			points = append(points, p)
			cur = p
		case 'L', 'l':
			p, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			verbs = append(verbs, vgbridge.VerbLine)
			points = append(points, p)
			cur = p
		case 'Q', 'q':
			c1, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			p, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			verbs = append(verbs, vgbridge.VerbQuad)
			points = append(points, c1, p)
			cur = p
		case 'C', 'c':
			c1, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			c2, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			p, err := pt(rel)
			if err != nil {
				return nil, nil, err
			}
			verbs = append(verbs, vgbridge.VerbCubic)
			points = append(points, c1, c2, p)
			cur = p
		case 'Z', 'z':
			verbs = append(verbs, vgbridge.VerbClose)
			cur = start
			if i < len(toks) && toks[i].cmd == 0 {
				return nil, nil, fmt.Errorf("scene: path data: numbers after %q", cmd)
			}
		default:
			return nil, nil, fmt.Errorf("scene: path data: unsupported command %q", cmd)
		}
	}
	return points, verbs, nil
}

type token struct {
	cmd byte
	num float32
}

func tokenize(d string) ([]token, error) {
	var toks []token
	for i := 0; i < len(d); {
		c := d[i]
		switch {
		case c == ',' || unicode.IsSpace(rune(c)):
			i++
		case isNumberStart(c):
			j := scanNumber(d, i)
			v, err := strconv.ParseFloat(d[i:j], 32)
			if err != nil {
				return nil, fmt.Errorf("scene: path data: bad number %q: %w", d[i:j], err)
			}
			toks = append(toks, token{num: float32(v)})
			i = j
		case strings.IndexByte("MmLlQqCcZz", c) >= 0:
			toks = append(toks, token{cmd: c})
			i++
		default:
			return nil, fmt.Errorf("scene: path data: unexpected %q at offset %d", c, i)
		}
	}
	return toks, nil
}

func isNumberStart(c byte) bool {
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// scanNumber returns the end of the number starting at i. A sign only
// starts a number or follows an exponent marker.
func scanNumber(d string, i int) int {
	j := i
	if d[j] == '-' || d[j] == '+' {
		j++
	}
	seenDot, seenExp := false, false
	for j < len(d) {
		c := d[j]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp:
			seenExp = true
			if j+1 < len(d) && (d[j+1] == '-' || d[j+1] == '+') {
				j++
			}
		default:
			return j
		}
		j++
	}
	return j
}
