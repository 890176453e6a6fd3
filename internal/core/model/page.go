package model

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Ordering string

const (
	OrderingAscending  Ordering = "asc"
	OrderingDescending Ordering = "desc"
)

type Page[T any] struct {
	Items      []T
	PageNumber int
	PageSize   int
	TotalCount int64
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 || p.TotalCount <= 0 {
		return 1
	}

	return int((p.TotalCount + int64(p.PageSize) - 1) / int64(p.PageSize))
}

func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages()
}

func (p Page[T]) HasPrevious() bool {
	return p.PageNumber > 1
}

type ListOptions struct {
	// PageNumber is 1-based
	PageNumber int
	PageSize   int
	// OrderBy names a sortable attribute. Empty means newest first.
	OrderBy  string
	Ordering Ordering
	Filters  map[string]string
}

// Normalize returns a copy of the options with defaults applied and bounds
// enforced.
func (o ListOptions) Normalize() ListOptions {
	normalized := ListOptions{
		PageNumber: o.PageNumber,
		PageSize:   o.PageSize,
		OrderBy:    o.OrderBy,
		Ordering:   o.Ordering,
		Filters:    make(map[string]string, len(o.Filters)),
	}

	if normalized.PageNumber < 1 {
		normalized.PageNumber = 1
	}

	if normalized.PageSize < 1 {
		normalized.PageSize = DefaultPageSize
	}

	if normalized.PageSize > MaxPageSize {
		normalized.PageSize = MaxPageSize
	}

	if normalized.Ordering != OrderingDescending {
		normalized.Ordering = OrderingAscending
	}

	for k, v := range o.Filters {
		normalized.Filters[k] = v
	}

	return normalized
}

func (o ListOptions) Offset() int {
	n := o.Normalize()
	return (n.PageNumber - 1) * n.PageSize
}

func (o ListOptions) Limit() int {
	return o.Normalize().PageSize
}

// WithFilter returns a copy of the options with the given filter set.
func (o ListOptions) WithFilter(key, value string) ListOptions {
	n := o.Normalize()
	n.Filters[key] = value
	return n
}
