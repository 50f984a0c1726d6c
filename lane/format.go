package lane

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the vector as "{1, 2, 3, 4}".
func (v Vec[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatLane(x))
	}
	sb.WriteByte('}')
	return sb.String()
}

// String renders the mask as "{true, false, ...}".
func (m Mask[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, bit := range m.bits {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatBool(bit))
	}
	sb.WriteByte('}')
	return sb.String()
}

func formatLane[T Lanes](x T) string {
	switch {
	case isFloat[T]():
		return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
	case isSigned[T]():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

func parseLane[T Lanes](s string) (T, error) {
	bits := bitSize[T]()
	switch {
	case isFloat[T]():
		f, err := strconv.ParseFloat(s, bits)
		return T(f), err
	case isSigned[T]():
		i, err := strconv.ParseInt(s, integerBase(s), bits)
		return T(i), err
	default:
		u, err := strconv.ParseUint(s, integerBase(s), bits)
		return T(u), err
	}
}

// integerBase returns 0 (prefix-driven) for tokens written with an explicit
// 0x, 0b or 0o prefix and 10 otherwise, so "010" reads as ten.
func integerBase(s string) int {
	s = strings.TrimLeft(s, "+-")
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			return 0
		}
	}
	return 10
}

// Parse reads a vector from text. Lanes are separated by commas and/or
// whitespace and may be wrapped in braces, so both "{1, 2, 3}" and "1 2 3"
// are accepted. Integer lanes are decimal, leading zeros included, unless
// written with an explicit 0x, 0b or 0o prefix.
func Parse[T Lanes](s string) (Vec[T], error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "{") {
		if !strings.HasSuffix(body, "}") {
			return Vec[T]{}, fmt.Errorf("lane: parse %q: unbalanced braces: %w", s, ErrParse)
		}
		body = body[1 : len(body)-1]
	}
	fields := strings.FieldsFunc(body, isLaneSeparator)
	if len(fields) == 0 {
		return Vec[T]{}, fmt.Errorf("lane: parse %q: no lanes: %w", s, ErrParse)
	}
	data := make([]T, len(fields))
	for i, f := range fields {
		x, err := parseLane[T](f)
		if err != nil {
			return Vec[T]{}, fmt.Errorf("lane: parse lane %d of %q: %w: %w", i, s, ErrParse, err)
		}
		data[i] = x
	}
	return Vec[T]{data: data}, nil
}

func isLaneSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLaneRune(r rune) bool {
	return !isLaneSeparator(r) && r != '{' && r != '}'
}

// Scan implements fmt.Scanner. It reads exactly NumLanes() lanes into v,
// replacing its contents, so the vector must be created with the wanted
// lane count first:
//
//	v := lane.Zero[float32](3)
//	_, err := fmt.Sscan("1 2.5 -3", &v)
//
// Separating commas are skipped. If the input opens with a brace, the
// matching closing brace is consumed too.
func (v *Vec[T]) Scan(state fmt.ScanState, verb rune) error {
	if len(v.data) == 0 {
		return fmt.Errorf("lane: scan into vector with no lanes: %w", ErrParse)
	}
	state.SkipSpace()
	braced, err := skipRune(state, '{')
	if err != nil {
		return fmt.Errorf("lane: scan: %w", err)
	}
	data := make([]T, len(v.data))
	for i := range data {
		tok, err := nextLaneToken(state)
		if err != nil {
			return fmt.Errorf("lane: scan lane %d: %w", i, err)
		}
		x, err := parseLane[T](tok)
		if err != nil {
			return fmt.Errorf("lane: scan lane %d: %w: %w", i, ErrParse, err)
		}
		data[i] = x
	}
	if braced {
		state.SkipSpace()
		if ok, _ := skipRune(state, '}'); !ok {
			return fmt.Errorf("lane: scan: missing closing brace: %w", ErrParse)
		}
	}
	v.data = data
	return nil
}

// skipRune consumes the next rune if it is want.
func skipRune(state fmt.ScanState, want rune) (bool, error) {
	r, _, err := state.ReadRune()
	if err != nil {
		return false, err
	}
	if r != want {
		return false, state.UnreadRune()
	}
	return true, nil
}

func nextLaneToken(state fmt.ScanState) (string, error) {
	for {
		r, _, err := state.ReadRune()
		if err != nil {
			return "", err
		}
		if isLaneRune(r) {
			if err := state.UnreadRune(); err != nil {
				return "", err
			}
			break
		}
	}
	tok, err := state.Token(false, isLaneRune)
	if err != nil {
		return "", err
	}
	return string(tok), nil
}
