package models

import "encoding/json"

// Pagination block returned with every list response.
type Pagination struct {
	// Next page is available
	HasMore bool `json:"has_more"`
	// Token used to retrieve the next page
	NextOffset string `json:"next_offset"`
	// Number of values found in the results
	Results int `json:"results"`
	// Maximal number of entries per page
	MaxPerPage int `json:"max_per_page"`
}

func NewPagination(hasMore bool, nextOffset string, results int, maxPerPage int) *Pagination {
	return &Pagination{
		HasMore:    hasMore,
		NextOffset: nextOffset,
		Results:    results,
		MaxPerPage: maxPerPage,
	}
}

func (o *Pagination) Equal(other *Pagination) bool {
	if o == nil || other == nil {
		return o == other
	}
	return *o == *other
}

func (o *Pagination) Clone() *Pagination {
	if o == nil {
		return nil
	}
	c := *o
	return &c
}

func (o *Pagination) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	if err := requireFields(data, "has_more", "next_offset", "results", "max_per_page"); err != nil {
		return err
	}

	type pagination Pagination
	var v pagination
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*o = Pagination(v)
	return nil
}
