package formatting

import (
	"fmt"
	"strconv"
	"strings"
)

var byteUnits = []struct {
	suffix string
	factor int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
	{"B", 1},
}

// ParseBytes parses a human-readable byte size string such as "50MB" into a
// byte count. Unit matching is case-insensitive and a bare number is treated
// as bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty byte size string")
	}

	for _, unit := range byteUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}

		number := strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
		value, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid byte size: %q", s)
		}

		return int64(value * float64(unit.factor)), nil
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}

	return value, nil
}
