package age

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var reference = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		age  string
		want time.Duration
	}{
		{name: "seconds", age: "40s", want: 40 * time.Second},
		{name: "minutes", age: "49m", want: 49 * time.Minute},
		{name: "hours", age: "5h", want: 5 * time.Hour},
		{name: "days", age: "3d", want: 3 * 24 * time.Hour},
		{name: "compound_day_hour", age: "1d2h", want: 26 * time.Hour},
		{name: "compound_three_units", age: "1d2h30m", want: 26*time.Hour + 30*time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.age, reference)
			assert.Equal(t, reference.Add(-tt.want), got)
		})
	}
}

func TestParse_NormalizationLaw(t *testing.T) {
	// Equivalent token spellings denote the same instant.
	assert.Equal(t, Parse("26h", reference), Parse("1d2h", reference))
	assert.Equal(t, Parse("90m", reference), Parse("1h30m", reference))
}

func TestParse_NoTokens(t *testing.T) {
	for _, s := range []string{"", "unknown", "-", "h5"} {
		assert.True(t, Parse(s, reference).IsZero(), "input %q", s)
	}
}

func TestParse_EmptySortsLast(t *testing.T) {
	ages := []string{"5m", "", "2h", "1d"}

	// Descending by recency: newest first, sentinel last.
	sort.Slice(ages, func(i, j int) bool {
		return Parse(ages[i], reference).After(Parse(ages[j], reference))
	})
	assert.Equal(t, []string{"5m", "2h", "1d", ""}, ages)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{name: "seconds", ago: 42 * time.Second, want: "42s"},
		{name: "minutes", ago: 12 * time.Minute, want: "12m"},
		{name: "hours", ago: 5*time.Hour + 20*time.Minute, want: "5h"},
		{name: "days", ago: 72 * time.Hour, want: "3d"},
		{name: "zero", ago: 0, want: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(reference.Add(-tt.ago), reference))
		})
	}
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	// Format then Parse lands within the formatted unit's resolution.
	created := reference.Add(-26 * time.Hour)
	back := Parse(Format(created, reference), reference)
	assert.True(t, !back.After(reference))
	assert.True(t, reference.Sub(back) <= 26*time.Hour)
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		name string
		age  string
		want Bucket
	}{
		{name: "recent_minutes", age: "20m", want: BucketRecent},
		{name: "recent_boundary", age: "1h", want: BucketRecent},
		{name: "today", age: "3h", want: BucketToday},
		{name: "yesterday", age: "20h", want: BucketYesterday},
		{name: "older_days", age: "3d", want: BucketOlder},
		{name: "unparseable", age: "", want: BucketOlder},
	}

	// reference is 14:30, so 3h is the same civil day and 20h is the
	// previous one.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketFor(tt.age, reference))
		})
	}
}
