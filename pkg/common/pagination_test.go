package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{"first page", 2, 0, []int{1, 2}},
		{"second page", 2, 2, []int{3, 4}},
		{"partial last page", 2, 4, []int{5}},
		{"offset past end", 2, 10, []int{}},
		{"zero limit", 0, 0, []int{}},
		{"negative limit means all", -1, 0, []int{1, 2, 3, 4, 5}},
		{"negative offset clamps to zero", 3, -1, []int{1, 2, 3}},
		{"limit beyond end", 10, 3, []int{4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slice(items, tt.limit, tt.offset))
		})
	}
}

func TestSliceEmptyInput(t *testing.T) {
	assert.Empty(t, Slice([]string{}, 10, 0))
}
