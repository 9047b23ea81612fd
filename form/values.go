package form

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/marcelsud/locadora-web/resource"
)

/* Helpers to read drafts out of posted form values
 * Unparseable input becomes the zero value so the required rule reports it
 */

func String(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func Int(values url.Values, key string) int {
	n, err := strconv.Atoi(String(values, key))
	if err != nil {
		return 0
	}
	return n
}

func Float(values url.Values, key string) float64 {
	// accept the pt-BR decimal comma
	f, err := strconv.ParseFloat(strings.ReplaceAll(String(values, key), ",", "."), 64)
	if err != nil {
		return 0
	}
	return f
}

func Bool(values url.Values, key string) bool {
	switch strings.ToLower(String(values, key)) {
	case "on", "true", "1", "sim":
		return true
	}
	return false
}

// Date returns the UTC midnight of the posted day
func Date(values url.Values, key string) time.Time {
	d, err := resource.ParseDate(String(values, key))
	if err != nil {
		return time.Time{}
	}
	return d.Time
}
