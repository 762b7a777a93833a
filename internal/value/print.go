package value

import (
	"strconv"
	"strings"
)

// String renders v in its canonical printed form (spec §3: printing is
// total). Booleans print as #t/#f, integral numbers drop the decimal
// point, strings are re-escaped, and pairs print with dotted-tail notation
// when the spine is improper.
func (v *Value) String() string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v *Value) {
	switch v.kind {
	case Nil:
		b.WriteString("()")
	case Boolean:
		if v.boolean {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Number:
		b.WriteString(formatNumber(v.number))
	case String:
		b.WriteByte('"')
		b.WriteString(escapeString(v.str))
		b.WriteByte('"')
	case Symbol:
		b.WriteString(v.symbol)
	case Pair:
		b.WriteByte('(')
		writeList(b, v)
		b.WriteByte(')')
	case Builtin:
		b.WriteString("#<procedure " + v.builtinName + ">")
	case Lambda:
		b.WriteString("#<lambda>")
	}
}

func writeList(b *strings.Builder, v *Value) {
	writeValue(b, v.car)
	rest := v.cdr
	for rest.kind == Pair {
		b.WriteByte(' ')
		writeValue(b, rest.car)
		rest = rest.cdr
	}
	if rest.kind != Nil {
		b.WriteString(" . ")
		writeValue(b, rest)
	}
}

// formatNumber prints with no decimal point when integral, otherwise up to
// 15 significant digits, per spec §3.
func formatNumber(n float64) string {
	if n == float64(int64(n)) {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', 15, 64)
}

func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\t", "\\t")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}

// DisplayString renders v for `display`/`displayln`: raw string content,
// unquoted, with everything else using the canonical printed form.
func (v *Value) DisplayString() string {
	if v.kind == String {
		return v.str
	}
	return v.String()
}
