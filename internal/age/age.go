// Package age parses and renders the compact relative-age strings shown in
// resource tables ("1d2h", "49m") and buckets resources into timeline groups.
//
// The token grammar is shared between chronological sorting and the timeline
// view; both must parse it identically or ordering becomes inconsistent
// between the two surfaces.
package age

import (
	"regexp"
	"strconv"
	"time"
)

// tokenPattern matches one (<integer><unit>) group. Units follow kubectl's
// age rendering: seconds, minutes, hours, days.
var tokenPattern = regexp.MustCompile(`(\d+)([smhd])`)

var unitDuration = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// Parse converts an age string into the absolute timestamp it denotes
// relative to now. Tokens are summed, so "1d2h" and "26h" parse to the same
// instant. A string with no matching tokens returns the zero time, which
// sorts last in a descending-by-recency order. Callers needing stable test
// results must pass a fixed now.
func Parse(s string, now time.Time) time.Time {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return time.Time{}
	}
	var total time.Duration
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += time.Duration(n) * unitDuration[m[2]]
	}
	return now.Add(-total)
}

// Format renders a timestamp as a compact age string using the single
// coarsest non-zero unit, matching how the resource tables display ages.
func Format(t time.Time, now time.Time) string {
	d := now.Sub(t)
	if days := int(d.Hours() / 24); days > 0 {
		return strconv.Itoa(days) + "d"
	}
	if hours := int(d.Hours()); hours > 0 {
		return strconv.Itoa(hours) + "h"
	}
	if minutes := int(d.Minutes()); minutes > 0 {
		return strconv.Itoa(minutes) + "m"
	}
	seconds := int(d.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	return strconv.Itoa(seconds) + "s"
}

// Bucket names a timeline group.
type Bucket string

const (
	BucketRecent    Bucket = "Recent"
	BucketToday     Bucket = "Today"
	BucketYesterday Bucket = "Yesterday"
	BucketOlder     Bucket = "Older"
)

// BucketFor groups an age string into a timeline bucket relative to now.
// Recent is anything within the last hour; Today and Yesterday follow civil
// days in now's location. Unparseable ages bucket as Older, consistent with
// the zero-time sentinel sorting last.
func BucketFor(s string, now time.Time) Bucket {
	t := Parse(s, now)
	if t.IsZero() {
		return BucketOlder
	}
	if now.Sub(t) <= time.Hour {
		return BucketRecent
	}
	y, m, d := now.Date()
	ty, tm, td := t.Date()
	if y == ty && m == tm && d == td {
		return BucketToday
	}
	yesterday := now.AddDate(0, 0, -1)
	y, m, d = yesterday.Date()
	if y == ty && m == tm && d == td {
		return BucketYesterday
	}
	return BucketOlder
}
