package countdown

import (
	"fmt"
	"time"
)

// Unknown is rendered while no valid deadline is available.
const Unknown = "--:--:--"

// Expired is the terminal display once remaining reaches zero.
const Expired = "expired"

// Format renders a remaining duration for display. At a day or more it shows
// day+hour+minute granularity; below that, hour:minute:second. Negative
// inputs clamp to the expired state.
func Format(rem time.Duration) string {
	if rem <= 0 {
		return Expired
	}
	if rem >= 24*time.Hour {
		days := int(rem / (24 * time.Hour))
		rem -= time.Duration(days) * 24 * time.Hour
		hours := int(rem / time.Hour)
		minutes := int(rem/time.Minute) % 60
		return fmt.Sprintf("%dd %dh %02dm", days, hours, minutes)
	}
	hours := int(rem / time.Hour)
	minutes := int(rem/time.Minute) % 60
	seconds := int(rem/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
