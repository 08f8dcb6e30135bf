package workout

import (
	"fmt"
	"strconv"
)

// FormatDuration renders seconds as MM:SS, the way the countdown timer shows it.
// Minutes are not capped at 59: an hour renders as 60:00.
//
// Negative values follow the timer underflow convention: below one minute the
// seconds are shown as 59-secs with no sign and no padding, otherwise the
// minutes get a leading minus.
func FormatDuration(seconds int) string {
	negative := seconds < 0
	if negative {
		seconds = -seconds
	}

	minutes := seconds / 60
	secs := seconds % 60

	switch {
	case negative && minutes == 0:
		return fmt.Sprintf("%02d:%d", minutes, 59-secs)
	case negative:
		return fmt.Sprintf("-%02d:%02d", minutes, secs)
	default:
		return fmt.Sprintf("%02d:%02d", minutes, secs)
	}
}

// FormatCount pads single digit counts to two digits, 7 -> "07".
// Counts of 10 and above, and negative counts, are rendered as is.
func FormatCount(count int) string {
	if count >= 0 && count < 10 {
		return fmt.Sprintf("%02d", count)
	}
	return strconv.Itoa(count)
}
