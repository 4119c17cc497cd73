package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		from, want int
	}{
		{name: "defaults", page: 0, size: 0, from: 0, want: DefaultPageSize},
		{name: "first page", page: 1, size: 20, from: 0, want: 20},
		{name: "third page", page: 3, size: 20, from: 40, want: 20},
		{name: "oversized clamps to max", page: 1, size: 150, from: 0, want: MaxPageSize},
		{name: "negative size", page: 1, size: -5, from: 0, want: DefaultPageSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.want, limit)
		})
	}
}
