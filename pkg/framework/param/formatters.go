package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloorDB is the level shown as -∞ and parsed back from "-inf".
const FloorDB = -96.0

// unitScale maps a display suffix to the factor that converts it to the
// parameter's plain unit.
type unitScale struct {
	suffix string
	scale  float64
}

// Time suffixes, longest first so "ms" wins over "s".
var timeUnits = []unitScale{
	{"µs", 0.001},
	{"us", 0.001},
	{"ms", 1},
	{"s", 1000},
}

// parseScaled strips the first matching suffix and applies its scale. A bare
// number is taken as the plain unit.
func parseScaled(str string, units []unitScale) (float64, error) {
	str = strings.TrimSpace(str)
	for _, u := range units {
		if num, ok := strings.CutSuffix(str, u.suffix); ok {
			v, err := parseFloat(num)
			if err != nil {
				return 0, err
			}
			return v * u.scale, nil
		}
	}
	return parseFloat(str)
}

// DecibelFormatter formats dB values, showing -∞ at or below FloorDB.
func DecibelFormatter(db float64) string {
	if db <= FloorDB {
		return "-∞ dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser accepts "-6", "-6 dB" and "-inf".
func DecibelParser(str string) (float64, error) {
	lower := strings.ToLower(str)
	if strings.Contains(lower, "∞") || strings.Contains(lower, "inf") {
		return FloorDB, nil
	}
	num, _ := strings.CutSuffix(strings.TrimSpace(lower), "db")
	return parseFloat(num)
}

// TimeFormatter picks µs, ms or s for a value in milliseconds.
func TimeFormatter(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.0f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.1f ms", ms)
	default:
		return fmt.Sprintf("%.2f s", ms/1000)
	}
}

// TimeParser returns milliseconds.
func TimeParser(str string) (float64, error) {
	return parseScaled(str, timeUnits)
}

func RatioFormatter(ratio float64) string {
	return fmt.Sprintf("%.1f:1", ratio)
}

func RatioParser(str string) (float64, error) {
	num, _ := strings.CutSuffix(strings.TrimSpace(str), ":1")
	return parseFloat(num)
}

// PanFormatter shows "C" near the center and a percentage with L or R
// elsewhere.
func PanFormatter(pan float64) string {
	switch {
	case math.Abs(pan) < 0.01:
		return "C"
	case pan < 0:
		return fmt.Sprintf("%.0fL", -pan*100)
	default:
		return fmt.Sprintf("%.0fR", pan*100)
	}
}

// PanParser accepts the PanFormatter output, "center" or a plain number in
// [-1, 1].
func PanParser(str string) (float64, error) {
	str = strings.ToUpper(strings.TrimSpace(str))
	if str == "C" || str == "CENTER" {
		return 0, nil
	}
	return parseScaled(str, []unitScale{{"L", -0.01}, {"R", 0.01}})
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return v, nil
}
