package grpcclient

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/steelerp/erpclient/internal/erpv1"
	"github.com/steelerp/erpclient/internal/model"
)

// Pagination defaults of list and search calls.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// pageRequest builds the pagination sub-message. Values below one select the
// defaults and values beyond the int32 range are clamped.
func pageRequest(page, limit int) *erpv1.PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &erpv1.PageRequest{Page: clampInt32(page), Limit: clampInt32(limit)}
}

func clampInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// optional copies *v so request messages never alias caller memory. nil stays
// nil, which leaves the field unset on the wire.
func optional[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func optionalInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	c := clampInt32(*v)
	return &c
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// timestampOf sends whole epoch seconds; the backend ignores nanos.
func timestampOf(t time.Time) *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: t.Unix()}
}

func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestampOf(*t)
}

func timeFrom(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func pageInfoFrom(pi *erpv1.PageInfo) model.PageInfo {
	return model.PageInfo{
		Page:        int(pi.GetPage()),
		Limit:       int(pi.GetLimit()),
		Total:       pi.GetTotal(),
		TotalPages:  int(pi.GetTotalPages()),
		HasNext:     pi.GetHasNext(),
		HasPrevious: pi.GetHasPrevious(),
	}
}
