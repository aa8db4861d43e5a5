package resources

// List is the envelope returned by list endpoints.
type List[T any] struct {
	Object     string `json:"object"                yaml:"object"`
	Data       []T    `json:"data"                  yaml:"data"`
	HasMore    bool   `json:"has_more"              yaml:"has_more"`
	URL        string `json:"url"                   yaml:"url"`
	TotalCount *int64 `json:"total_count,omitempty" yaml:"total_count,omitempty"`
}

// Last returns the final item of the page.
func (l *List[T]) Last() (T, bool) {
	var zero T

	if l == nil || len(l.Data) == 0 {
		return zero, false
	}

	return l.Data[len(l.Data)-1], true
}
