package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name       string
		offset     *int
		limit      *int
		wantOffset int
		wantLimit  int
	}{
		{"defaults", nil, nil, 0, 20},
		{"explicit", intPtr(40), intPtr(10), 40, 10},
		{"negative offset", intPtr(-1), nil, 0, 20},
		{"zero limit", nil, intPtr(0), 0, 20},
		{"capped limit", nil, intPtr(500), 0, 100},
		{"max limit", nil, intPtr(100), 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := GetPaginationParams(tt.offset, tt.limit)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestPageQuery(t *testing.T) {
	offset, limit, err := PageQuery(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, offset)
	assert.Nil(t, limit)

	offset, limit, err = PageQuery(url.Values{"offset": {"5"}, "limit": {"15"}})
	require.NoError(t, err)
	assert.Equal(t, 5, *offset)
	assert.Equal(t, 15, *limit)

	_, _, err = PageQuery(url.Values{"limit": {"ten"}})
	assert.EqualError(t, err, "invalid 'limit' query parameter, must be an integer")

	_, _, err = PageQuery(url.Values{"offset": {"-x"}})
	assert.EqualError(t, err, "invalid 'offset' query parameter, must be an integer")
}
