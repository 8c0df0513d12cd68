package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/docdex/docdex/internal/domain"
	"github.com/docdex/docdex/internal/domain/listing/filter"
	listinguc "github.com/docdex/docdex/internal/usecase/listing"
)

// Date-only values are accepted alongside full RFC 3339 timestamps.
const dateOnly = "2006-01-02"

// parseListRequest converts listing query parameters into a usecase
// request. Repeated parameters (category, type, project, author, tag)
// accumulate into OR sets.
func parseListRequest(q url.Values) (listinguc.Request, error) {
	req := listinguc.Request{
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}

	var err error
	if req.Page, err = parseIntParam(q, "page"); err != nil {
		return listinguc.Request{}, err
	}
	if req.PageSize, err = parseIntParam(q, "page_size"); err != nil {
		return listinguc.Request{}, err
	}

	spec := filter.Spec{
		Categories: q["category"],
		FileTypes:  q["type"],
		Projects:   q["project"],
		Authors:    q["author"],
		Tags:       q["tag"],
	}

	if spec.Favorite, err = parseTristateParam(q, "favorite"); err != nil {
		return listinguc.Request{}, err
	}
	if spec.Archived, err = parseTristateParam(q, "archived"); err != nil {
		return listinguc.Request{}, err
	}
	if spec.Uploaded, err = parseDateRange(q); err != nil {
		return listinguc.Request{}, err
	}

	req.Filter = spec
	return req, nil
}

func parseIntParam(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, domain.ErrInvalidParameter)
	}
	return v, nil
}

func parseTristateParam(q url.Values, name string) (filter.Tristate, error) {
	switch raw := q.Get(name); raw {
	case "":
		return filter.Unset, nil
	case "true":
		return filter.RequireTrue, nil
	case "false":
		return filter.RequireFalse, nil
	default:
		return filter.Unset, fmt.Errorf("%s must be true or false, got %q: %w", name, raw, domain.ErrInvalidParameter)
	}
}

// parseDateRange builds the upload-date window from date_from and
// date_to. An open end extends to the far side, so a single bound
// still restricts only one direction.
func parseDateRange(q url.Values) (*filter.DateRange, error) {
	fromRaw, toRaw := q.Get("date_from"), q.Get("date_to")
	if fromRaw == "" && toRaw == "" {
		return nil, nil
	}

	r := filter.DateRange{
		Start: time.Time{},
		End:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}

	var err error
	if fromRaw != "" {
		if r.Start, err = parseTimestamp(fromRaw); err != nil {
			return nil, fmt.Errorf("date_from: %w", err)
		}
	}
	if toRaw != "" {
		if r.End, err = parseTimestamp(toRaw); err != nil {
			return nil, fmt.Errorf("date_to: %w", err)
		}
		// A bare date covers its whole day.
		if len(toRaw) == len(dateOnly) {
			r.End = r.End.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return &r, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	ts, err := time.Parse(dateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", raw, domain.ErrInvalidParameter)
	}
	return ts, nil
}
