package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

const maxLimit = 200

// pathID parses a positive integer URL parameter. It reports a 400 and
// returns false when the parameter is malformed.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// searchQuery reads the required q parameter. It reports a 400 and returns
// false when q is absent or blank.
func searchQuery(w http.ResponseWriter, q url.Values) (string, bool) {
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "MISSING_QUERY", "q is required")
		return "", false
	}
	return query, true
}

// pageParams reads page and limit. Missing or invalid values are left zero
// so the facade applies its defaults; limit is capped at maxLimit.
func pageParams(q url.Values) (page, limit int) {
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l > 0 {
		limit = min(l, maxLimit)
	}
	return page, limit
}

// optionalString returns nil for an absent or blank query value.
func optionalString(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func optionalInt64(q url.Values, key string) (*int64, bool) {
	raw := q.Get(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

// optionalDate accepts RFC 3339 timestamps and plain dates.
func optionalDate(q url.Values, key string) (*time.Time, bool) {
	raw := q.Get(key)
	if raw == "" {
		return nil, true
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}
