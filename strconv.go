// Copyright 2020 Aleksandr Demakin. All rights reserved.

package decimal

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/avdva/decimal/internal/bignat"
)

const (
	delim = '.'
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 256)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// Parse converts a string into a Decimal. Input that breaks the
// number grammar produces a quiet NaN with invalid-operation raised.
// The grammar accepts an optional sign, digits with at most one '.',
// an optional e/E exponent, and the case-insensitive specials
// "Infinity", "Inf", and "NaN" with an optional diagnostic payload.
func (h *Hook) Parse(s string) Decimal {
	d, _ := h.FromString(s)
	return d
}

// ParseBytes converts a character sequence into a Decimal the way
// Parse does.
func (h *Hook) ParseBytes(b []byte) Decimal {
	return h.Parse(string(b))
}

// FromString converts a string into a Decimal. On malformed input the
// returned value is the same quiet NaN Parse produces, and the error
// locates the offending character.
func (h *Hook) FromString(s string) (Decimal, error) {
	d, err := parse(h, s)
	if err != nil {
		d = Decimal{hook: h, kind: qnan}
		d.raise(InvalidOperation)
		return d, fmt.Errorf("parsing failed: %w", err)
	}
	return d, nil
}

func parse(h *Hook, s string) (Decimal, error) {
	if len(s) == 0 {
		return Decimal{}, newPosError("empty input", 1)
	}
	var neg bool
	body, offset := s, 1
	if body[0] == '-' || body[0] == '+' {
		neg = body[0] == '-'
		body = body[1:]
		offset++
	}
	if len(body) == 0 {
		return Decimal{}, newPosError("no digits after sign", offset)
	}
	if k, ok := parseSpecial(body); ok {
		return Decimal{hook: h, kind: k, neg: neg}, nil
	}
	digits, exp, err := parseFinite(body, offset)
	if err != nil {
		return Decimal{}, err
	}
	coeff, ok := bignat.SetString(digits)
	if !ok { // should not normally happen, parseFinite validated every rune
		return Decimal{}, newPosError("bad coefficient", offset)
	}
	d := Decimal{hook: h, coeff: coeff, exp: exp, neg: neg}
	d.round()
	return d, nil
}

// parseSpecial matches the case-insensitive "inf", "infinity", and
// "nan" with an optional numeric payload. The payload is diagnostic
// only and is not preserved.
func parseSpecial(s string) (kind, bool) {
	low := strings.ToLower(s)
	switch low {
	case "inf", "infinity":
		return infinite, true
	}
	if !strings.HasPrefix(low, "nan") {
		return finite, false
	}
	for _, r := range low[3:] {
		if r < '0' || r > '9' {
			return finite, false
		}
	}
	return qnan, true
}

// parseFinite scans [digits] ['.' digits] [e [sign] digits], returning
// the coefficient digits without the dot and the combined exponent.
func parseFinite(s string, offset int) (digits string, exp int32, err error) {
	var b strings.Builder
	delimPos, expAt := -1, -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			if c == '0' && b.Len() == 0 && delimPos == -1 { // omit leading zeros
				continue
			}
			b.WriteByte(c)
		case c == delim:
			if delimPos != -1 {
				return "", 0, newPosError("unexpected delimeter", i+offset)
			}
			delimPos = b.Len()
		case c == 'e' || c == 'E':
			expAt = i
		default:
			return "", 0, newPosError(fmt.Sprintf("unexpected symbol %q", c), i+offset)
		}
		if expAt >= 0 {
			break
		}
	}
	mant := s
	if expAt >= 0 {
		mant = s[:expAt]
	}
	if !hasDigit(mant) {
		return "", 0, newPosError("no digits in coefficient", offset)
	}
	var e int64
	if expAt >= 0 {
		tail := s[expAt+1:]
		parsed, perr := strconv.ParseInt(tail, 10, 32)
		if perr != nil || len(tail) == 0 {
			return "", 0, newPosError("error parsing exponent", expAt+1+offset)
		}
		e = parsed
	}
	frac := 0
	if delimPos >= 0 {
		frac = b.Len() - delimPos
	}
	e -= int64(frac)
	if e > math.MaxInt32 || e < math.MinInt32 {
		return "", 0, newPosError("exponent out of range", offset)
	}
	digits = b.String()
	if len(digits) == 0 { // a zero-only coefficient
		digits = "0"
	}
	return digits, int32(e), nil
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if '0' <= s[i] && s[i] <= '9' {
			return true
		}
	}
	return false
}

// String returns the canonical decimal form: no exponent, a '.' only
// when there are fractional digits, specials as "Infinity" and "NaN"
// with an optional leading '-'.
func (d Decimal) String() string {
	var builder strings.Builder
	d.writeString(&builder)
	return builder.String()
}

// GoString returns a debug representation.
func (d Decimal) GoString() string {
	if d.kind != finite {
		return d.String()
	}
	return d.String() + fmt.Sprintf(" {%s, %d}", d.coeff.String(), d.exp)
}

func (d Decimal) writeString(builder *strings.Builder) {
	if d.neg {
		builder.WriteByte('-')
	}
	switch d.kind {
	case infinite:
		builder.WriteString("Infinity")
		return
	case qnan:
		builder.WriteString("NaN")
		return
	}
	s := d.coeff.String()
	switch {
	case d.exp == 0:
		builder.WriteString(s)
	case d.exp > 0:
		builder.WriteString(s)
		writeZeros(builder, int(d.exp))
	default:
		if diff := len(s) + int(d.exp); diff <= 0 { // add leading zeros and a delimiter
			builder.WriteByte('0')
			builder.WriteByte(delim)
			writeZeros(builder, -diff)
			builder.WriteString(s)
		} else { // insert a delimeter
			builder.WriteString(s[:diff])
			builder.WriteByte(delim)
			builder.WriteString(s[diff:])
		}
	}
}

func writeZeros(builder *strings.Builder, count int) {
	for count > len(manyZeros) {
		builder.Write(manyZeros)
		count -= len(manyZeros)
	}
	if count > 0 {
		builder.Write(manyZeros[:count])
	}
}
