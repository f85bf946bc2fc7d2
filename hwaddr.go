package hwaddr

import (
	"log/slog"
	"math/big"
	"strconv"
	"strings"
)

// Grouping selects how the hexadecimal digits of a value are split into octets.
type Grouping int

const (
	// GroupCanonical pads the hex digits to an even count before splitting,
	// so every output has exactly six two-character octets. Default.
	GroupCanonical Grouping = iota
	// GroupGreedy splits from the most-significant end in pairs and leaves a
	// single trailing digit when the digit count is odd: 0xabc renders as
	// "00:00:00:00:AB:C". Matches strings stored by older web frontends.
	GroupGreedy
)

// String returns the grouping name used in logs and CLI output.
func (g Grouping) String() string {
	switch g {
	case GroupCanonical:
		return "canonical"
	case GroupGreedy:
		return "greedy"
	default:
		return "Grouping(" + strconv.Itoa(int(g)) + ")"
	}
}

const (
	// MaxValue is the largest value that fits in six octets.
	MaxValue uint64 = 1<<48 - 1

	// octets is the number of groups in a formatted address.
	octets = 6

	// separator joins the octets.
	separator = ":"
)

var maxBig = new(big.Int).SetUint64(MaxValue)

// Formatter renders integers as colon-separated hardware addresses.
// A Formatter holds no mutable state after configuration and is safe for
// concurrent use once the With* methods have been called.
type Formatter struct {
	logger   *slog.Logger
	grouping Grouping
	strict   bool
}

// New creates a Formatter with canonical grouping that silently truncates
// values wider than 48 bits.
func New() *Formatter {
	return &Formatter{
		grouping: GroupCanonical,
	}
}

// WithGrouping sets the octet grouping policy.
func (f *Formatter) WithGrouping(g Grouping) *Formatter {
	f.grouping = g

	return f
}

// WithStrict makes the formatter reject values above [MaxValue] with
// [ErrOutOfRange] instead of keeping only their low 48 bits.
func (f *Formatter) WithStrict(strict bool) *Formatter {
	f.strict = strict

	return f
}

// WithLogger sets an optional [*slog.Logger]. A nil logger (the default)
// disables logging.
func (f *Formatter) WithLogger(logger *slog.Logger) *Formatter {
	f.logger = logger

	return f
}

// Format renders value as XX:XX:XX:XX:XX:XX. It only fails when the
// formatter is strict and value exceeds [MaxValue].
func (f *Formatter) Format(value uint64) (string, error) {
	if value > MaxValue {
		if f.strict {
			return "", &ArgumentError{Input: strconv.FormatUint(value, 10), Err: ErrOutOfRange}
		}
		f.logDebug("truncating value to 48 bits", "value", value)
	}

	return f.group(strconv.FormatUint(value, 16)), nil
}

// FormatInt is like [Formatter.Format] but rejects negative values with
// [ErrInvalidArgument].
func (f *Formatter) FormatInt(value int64) (string, error) {
	if value < 0 {
		return "", invalidArgument(strconv.FormatInt(value, 10), "negative value")
	}

	return f.Format(uint64(value))
}

// FormatBig formats an integer of any width. Nil and negative values fail
// with [ErrInvalidArgument].
func (f *Formatter) FormatBig(value *big.Int) (string, error) {
	if value == nil {
		return "", invalidArgument("<nil>", "nil integer")
	}
	if value.Sign() < 0 {
		return "", invalidArgument(value.String(), "negative value")
	}
	if value.Cmp(maxBig) > 0 {
		if f.strict {
			return "", &ArgumentError{Input: value.String(), Err: ErrOutOfRange}
		}
		f.logDebug("truncating value to 48 bits", "value", value.String(), "bits", value.BitLen())
	}

	return f.group(value.Text(16)), nil
}

// FormatString parses s as a decimal integer, or hexadecimal when prefixed
// with "0x", and formats the result.
func (f *Formatter) FormatString(s string) (string, error) {
	value, err := parseInteger(s)
	if err != nil {
		return "", err
	}

	return f.FormatBig(value)
}

// group splits lowercase hex digits into octets, prepends six zero octets
// and keeps the last six.
func (f *Formatter) group(digits string) string {
	if f.grouping != GroupGreedy && len(digits)%2 != 0 {
		digits = "0" + digits
	}

	groups := make([]string, 0, octets+(len(digits)+1)/2)
	for i := 0; i < octets; i++ {
		groups = append(groups, "00")
	}
	for i := 0; i < len(digits); i += 2 {
		groups = append(groups, digits[i:min(i+2, len(digits))])
	}

	return strings.ToUpper(strings.Join(groups[len(groups)-octets:], separator))
}

// logDebug logs at debug level if a logger is configured.
func (f *Formatter) logDebug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

// parseInteger accepts a decimal literal or a 0x/0X prefixed hex literal.
func parseInteger(s string) (*big.Int, error) {
	trimmed := strings.TrimSpace(s)
	digits, base := trimmed, 10
	if rest, ok := strings.CutPrefix(strings.ToLower(trimmed), "0x"); ok {
		digits, base = rest, 16
	}
	if digits == "" {
		return nil, invalidArgument(s, "empty integer")
	}

	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, invalidArgument(s, "not an integer")
	}

	return value, nil
}

var defaultFormatter = New()

// Format renders value as XX:XX:XX:XX:XX:XX using canonical grouping.
// Values wider than 48 bits keep only their low 48 bits.
func Format(value uint64) string {
	// the default formatter is never strict
	s, _ := defaultFormatter.Format(value)

	return s
}

// FormatInt formats a signed value, rejecting negatives with [ErrInvalidArgument].
func FormatInt(value int64) (string, error) {
	return defaultFormatter.FormatInt(value)
}

// FormatBig formats an arbitrary-width non-negative integer.
func FormatBig(value *big.Int) (string, error) {
	return defaultFormatter.FormatBig(value)
}

// FormatString parses and formats a decimal or 0x-prefixed hex literal.
func FormatString(s string) (string, error) {
	return defaultFormatter.FormatString(s)
}
