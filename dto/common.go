package dto

import (
	"fmt"
	"time"
)

// IDRequest carries the body-borne id used by PUT/DELETE on collection paths.
type IDRequest struct {
	ID uint `json:"id" binding:"required"`
}

// ParseDate accepts the date formats the admin UI sends: plain dates and
// RFC 3339 timestamps.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}
