package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	pageSizeDefault = 20
	pageSizeMax     = 100
)

// GetPaginationParams resolves the offset and limit of a listing page.
// Missing or negative offsets start at 0; missing or non-positive limits fall back
// to the default page size, and limits above the maximum are capped.
func GetPaginationParams(offset *int, limit *int) (int, int) {
	finalOffset := 0
	finalLimit := pageSizeDefault

	if offset != nil && *offset >= 0 {
		finalOffset = *offset
	}

	if limit != nil && *limit > 0 {
		finalLimit = min(*limit, pageSizeMax)
	}

	return finalOffset, finalLimit
}

// QueryInt reads an optional integer query parameter. It returns nil when the
// parameter is absent.
func QueryInt(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid '%s' query parameter, must be an integer", name)
	}
	return &v, nil
}

// PageQuery reads the offset and limit query parameters of a listing request.
func PageQuery(values url.Values) (offset *int, limit *int, err error) {
	if offset, err = QueryInt(values, "offset"); err != nil {
		return nil, nil, err
	}
	if limit, err = QueryInt(values, "limit"); err != nil {
		return nil, nil, err
	}
	return offset, limit, nil
}
