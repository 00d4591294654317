package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueStrings(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: nil},
		{name: "empty", input: []string{}, want: nil},
		{name: "no_duplicates", input: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "preserves_first_seen_order", input: []string{"b", "a", "b", "c", "a"}, want: []string{"b", "a", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UniqueStrings(tt.input))
		})
	}
}
