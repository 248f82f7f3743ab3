package types

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Precision records how much of a date the user supplied.
type Precision int

const (
	PrecisionSecond Precision = iota
	PrecisionMinute
	PrecisionDay
	PrecisionMonth
	PrecisionYear
)

// dateLayouts are tried in order; the first that parses fixes the precision.
var dateLayouts = []struct {
	layout    string
	precision Precision
}{
	{"2006-01-02T15:04:05", PrecisionSecond},
	{"2006-01-02 15:04:05", PrecisionSecond},
	{"2006-01-02T15:04", PrecisionMinute},
	{"2006-01-02", PrecisionDay},
	{"2006-01", PrecisionMonth},
	{"2006", PrecisionYear},
}

// Layout returns the user text layout for the precision.
func (p Precision) Layout() string {
	switch p {
	case PrecisionYear:
		return "2006"
	case PrecisionMonth:
		return "2006-01"
	case PrecisionDay:
		return "2006-01-02"
	case PrecisionMinute:
		return "2006-01-02T15:04"
	default:
		return "2006-01-02T15:04:05"
	}
}

// String returns the precision's markup attribute value.
func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionMinute:
		return "minute"
	default:
		return "second"
	}
}

// ParsePrecision resolves a precision from its attribute value.
func ParsePrecision(s string) (Precision, bool) {
	for p := PrecisionSecond; p <= PrecisionYear; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return PrecisionSecond, false
}

// FileSizeFactor is the byte multiplier selected by a unit suffix.
type FileSizeFactor int64

const (
	FactorNone FileSizeFactor = 1
	FactorKB   FileSizeFactor = 1 << 10
	FactorMB   FileSizeFactor = 1 << 20
	FactorGB   FileSizeFactor = 1 << 30
	FactorTB   FileSizeFactor = 1 << 40
	FactorPB   FileSizeFactor = 1 << 50
)

// factors is ordered largest first.
var factors = []FileSizeFactor{FactorPB, FactorTB, FactorGB, FactorMB, FactorKB, FactorNone}

// String returns the unit name, empty for FactorNone.
func (f FileSizeFactor) String() string {
	switch f {
	case FactorKB:
		return "KB"
	case FactorMB:
		return "MB"
	case FactorGB:
		return "GB"
	case FactorTB:
		return "TB"
	case FactorPB:
		return "PB"
	default:
		return ""
	}
}

// ParseFactor resolves a unit name; the empty string is FactorNone.
func ParseFactor(s string) (FileSizeFactor, bool) {
	if s == "" {
		return FactorNone, true
	}
	for _, f := range factors {
		if strings.EqualFold(f.String(), s) {
			return f, true
		}
	}
	return FactorNone, false
}

// factorForUnit maps a single unit letter to its factor.
func factorForUnit(c byte) (FileSizeFactor, bool) {
	switch c {
	case 'k', 'K':
		return FactorKB, true
	case 'm', 'M':
		return FactorMB, true
	case 'g', 'G':
		return FactorGB, true
	case 't', 'T':
		return FactorTB, true
	case 'p', 'P':
		return FactorPB, true
	}
	return FactorNone, false
}

// DeriveFactor returns the largest factor not exceeding the byte count.
func DeriveFactor(bytes int64) FileSizeFactor {
	abs := bytes
	if abs < 0 {
		abs = -abs
	}
	for _, f := range factors {
		if abs >= int64(f) {
			return f
		}
	}
	return FactorNone
}

// Value is a tagged union over the value kinds. The zero Value is an unset
// text value.
type Value struct {
	time      time.Time
	text      string
	number    int64
	factor    FileSizeFactor
	kind      Kind
	precision Precision
	set       bool
}

// TextValue returns a text value; the empty string is unset.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s, set: s != ""}
}

// IntegerValue returns a set integer value.
func IntegerValue(n int64) Value {
	return Value{kind: KindInteger, number: n, set: true}
}

// DateValue returns a set date value with the given precision.
func DateValue(t time.Time, p Precision) Value {
	return Value{kind: KindDate, time: t.UTC(), precision: p, set: true}
}

// FileSizeValue returns a set file size value.
func FileSizeValue(bytes int64, factor FileSizeFactor) Value {
	if factor == 0 {
		factor = FactorNone
	}
	return Value{kind: KindFileSize, number: bytes, factor: factor, set: true}
}

// EmptyValue returns the empty-kind singleton. It is never unset.
func EmptyValue() Value {
	return Value{kind: KindEmpty, set: true}
}

// Unset returns an unset value of the given kind.
func Unset(kind Kind) Value {
	return Value{kind: kind}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value is unset.
func (v Value) IsEmpty() bool { return !v.set }

// Text returns the text payload.
func (v Value) Text() string { return v.text }

// Int returns the integer payload; for file sizes it is the byte count.
func (v Value) Int() int64 { return v.number }

// Time returns the date payload.
func (v Value) Time() time.Time { return v.time }

// Precision returns the date precision.
func (v Value) Precision() Precision { return v.precision }

// Factor returns the unit suffix a file size was entered with.
func (v Value) Factor() FileSizeFactor { return v.factor }

// Window returns the inclusive range of instants a date value covers.
func (v Value) Window() (time.Time, time.Time) {
	lo := v.time
	var hi time.Time
	switch v.precision {
	case PrecisionYear:
		hi = lo.AddDate(1, 0, 0)
	case PrecisionMonth:
		hi = lo.AddDate(0, 1, 0)
	case PrecisionDay:
		hi = lo.AddDate(0, 0, 1)
	case PrecisionMinute:
		hi = lo.Add(time.Minute)
	default:
		return lo, lo
	}
	return lo, hi.Add(-time.Second)
}

// ParseUserQuery parses user-typed text as a value of the given kind.
// Failures yield an unset value; nothing is reported.
func ParseUserQuery(kind Kind, s string) Value {
	switch kind {
	case KindText:
		return TextValue(s)
	case KindInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Unset(KindInteger)
		}
		return IntegerValue(n)
	case KindDate:
		return parseDate(strings.TrimSpace(s))
	case KindFileSize:
		return parseFileSize(s)
	case KindEmpty:
		if strings.TrimSpace(s) != "" {
			return Unset(KindEmpty)
		}
		return EmptyValue()
	default:
		return Unset(kind)
	}
}

func parseDate(s string) Value {
	for _, l := range dateLayouts {
		t, err := time.ParseInLocation(l.layout, s, time.UTC)
		if err == nil {
			return DateValue(t, l.precision)
		}
	}
	return Unset(KindDate)
}

func parseFileSize(s string) Value {
	s = strings.TrimSpace(s)
	if n := len(s); n > 0 && (s[n-1] == 'b' || s[n-1] == 'B') {
		s = s[:n-1]
	}

	factor := FactorNone
	if n := len(s); n > 0 {
		if f, ok := factorForUnit(s[n-1]); ok {
			factor = f
			s = s[:n-1]
		}
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return Unset(KindFileSize)
	}

	bytes := math.Round(num * float64(factor))
	if bytes >= math.MaxInt64 || bytes < math.MinInt64 {
		return Unset(KindFileSize)
	}
	return FileSizeValue(int64(bytes), factor)
}

// UserQuery formats the value as user-typeable text.
func (v Value) UserQuery() string {
	if !v.set {
		return ""
	}
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.number, 10)
	case KindDate:
		return v.time.Format(v.precision.Layout())
	case KindFileSize:
		return FormatFileSize(v.number, false)
	default:
		return ""
	}
}

// FormatFileSize renders a byte count with the largest fitting unit and one
// decimal place. A trailing ".0" is dropped unless force is set. When one
// decimal would lose bytes the full precision is kept so the text parses
// back to the same count.
func FormatFileSize(bytes int64, force bool) string {
	factor := DeriveFactor(bytes)
	if factor == FactorNone {
		return strconv.FormatInt(bytes, 10)
	}

	scaled := float64(bytes) / float64(factor)
	tenths := math.Round(scaled*10) / 10

	var num string
	if int64(math.Round(tenths*float64(factor))) == bytes {
		num = strconv.FormatFloat(tenths, 'f', 1, 64)
		if !force {
			num = strings.TrimSuffix(num, ".0")
		}
	} else {
		num = strconv.FormatFloat(scaled, 'f', -1, 64)
	}
	return num + " " + factor.String()
}

// Equal reports whether two values are structurally equal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind || v.set != o.set {
		return false
	}
	if !v.set {
		return true
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindInteger, KindFileSize:
		return v.number == o.number
	case KindDate:
		return v.time.Equal(o.time) && v.precision == o.precision
	default:
		return true
	}
}
