package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	cases := []struct {
		name     string
		in       PaginationParams
		page     int
		size     int
		offset   int
	}{
		{"defaults", PaginationParams{}, 1, DefaultPageSize, 0},
		{"negative page", PaginationParams{Page: -2, Size: 5}, 1, 5, 0},
		{"size clamped", PaginationParams{Page: 2, Size: 100}, 2, MaxPageSize, 25},
		{"valid", PaginationParams{Page: 3, Size: 10}, 3, 10, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			assert.Equal(t, tc.page, tc.in.Page)
			assert.Equal(t, tc.size, tc.in.Size)
			assert.Equal(t, tc.offset, tc.in.Offset())
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2, 3}, 2, 3, 7)

	assert.Equal(t, 3, len(resp.Items))
	assert.Equal(t, 3, resp.Pages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	last := NewPaginatedResponse([]int{7}, 3, 3, 7)
	assert.False(t, last.HasNext)

	empty := NewPaginatedResponse[int](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.Pages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}
