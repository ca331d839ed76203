package i18n

import (
	"fmt"
	"time"
)

// Relative renders t relative to now, e.g. "3 days ago" or "in 2 h".
func Relative(l Language, t, now time.Time) string {
	d := t.Sub(now)
	future := d > 0
	if d < 0 {
		d = -d
	}

	var key string
	var n int
	switch {
	case d < time.Minute:
		return T(l, "time.just-now")
	case d < time.Hour:
		key, n = "minutes", int(d/time.Minute)
	case d < 24*time.Hour:
		key, n = "hours", int(d/time.Hour)
	default:
		key, n = "days", int(d/(24*time.Hour))
	}

	if future {
		return fmt.Sprintf(T(l, "time.in-"+key), n)
	}
	return fmt.Sprintf(T(l, "time."+key+"-ago"), n)
}
