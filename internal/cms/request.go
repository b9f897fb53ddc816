package cms

import (
	"net/url"
	"sort"
	"strconv"
)

// Request identifies one collection read: filters, relations to populate,
// ordering and pagination. It is a value; build one per call.
type Request struct {
	Collection string
	Filters    map[string]string
	Populate   []string
	Sort       []string
	Page       int
	PageSize   int
}

// Path renders the request as a path relative to the /api prefix, e.g.
// "case-studies?filters[slug][$eq]=acme&populate=*".
func (r Request) Path() string {
	q := url.Values{}

	keys := make([]string, 0, len(r.Filters))
	for k := range r.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set("filters["+k+"][$eq]", r.Filters[k])
	}

	switch {
	case len(r.Populate) == 1 && r.Populate[0] == "*":
		q.Set("populate", "*")
	default:
		for i, field := range r.Populate {
			q.Set("populate["+strconv.Itoa(i)+"]", field)
		}
	}

	for i, s := range r.Sort {
		q.Set("sort["+strconv.Itoa(i)+"]", s)
	}

	if r.Page > 0 {
		q.Set("pagination[page]", strconv.Itoa(r.Page))
	}
	if r.PageSize > 0 {
		q.Set("pagination[pageSize]", strconv.Itoa(r.PageSize))
	}

	if len(q) == 0 {
		return r.Collection
	}
	return r.Collection + "?" + q.Encode()
}
