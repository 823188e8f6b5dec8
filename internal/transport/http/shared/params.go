package shared

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Date pulls year/month URL params, with day optional via wantDay. Bounds
// are sanity checks on the URL, not business validation.
func Date(r *http.Request, wantDay bool) (year, month, day int, err error) {
	year, err = intParam(r, "year", 2000, 2100)
	if err != nil {
		return 0, 0, 0, err
	}
	month, err = intParam(r, "month", 1, 12)
	if err != nil {
		return 0, 0, 0, err
	}
	if !wantDay {
		return year, month, 0, nil
	}
	day, err = intParam(r, "day", 1, 31)
	if err != nil {
		return 0, 0, 0, err
	}
	return year, month, day, nil
}

func intParam(r *http.Request, name string, lo, hi int) (int, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if value < lo || value > hi {
		return 0, fmt.Errorf("%s out of range", name)
	}
	return value, nil
}
