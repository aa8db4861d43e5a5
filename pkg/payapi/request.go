package payapi

import (
	"fmt"

	"github.com/fivetwenty-io/payapi/pkg/form"
)

// Binding is implemented by every endpoint binding.
type Binding interface {
	Build() *RequestBuilder
}

// RequestBuilder is the transport-neutral description of one HTTP call. It
// holds a reference to the parameter record and serializes it only when
// encoded, so building a request never fails.
type RequestBuilder struct {
	method Method
	path   string
	query  any
	form   any
}

// NewRequest starts a request for an already interpolated path.
func NewRequest(method Method, path string) *RequestBuilder {
	return &RequestBuilder{
		method: method,
		path:   path,
	}
}

// Query attaches params to be sent in the query string.
func (r *RequestBuilder) Query(params any) *RequestBuilder {
	r.query = params

	return r
}

// Form attaches params to be sent as a form body.
func (r *RequestBuilder) Form(params any) *RequestBuilder {
	r.form = params

	return r
}

// Method returns the HTTP method.
func (r *RequestBuilder) Method() Method {
	return r.method
}

// Path returns the interpolated path.
func (r *RequestBuilder) Path() string {
	return r.path
}

// Params returns whichever parameter record is attached.
func (r *RequestBuilder) Params() any {
	if r.form != nil {
		return r.form
	}

	return r.query
}

// Placement reports where the attached parameters will be encoded.
func (r *RequestBuilder) Placement() Placement {
	switch {
	case r.form != nil:
		return PlacementBody
	case r.query != nil:
		return PlacementQuery
	default:
		return PlacementNone
	}
}

// EncodedRequest is a RequestBuilder after parameter serialization.
type EncodedRequest struct {
	Method Method
	Path   string
	Query  string
	Body   string
}

// URL returns the path with the query string appended.
func (e EncodedRequest) URL() string {
	if e.Query == "" {
		return e.Path
	}

	return e.Path + "?" + e.Query
}

// HasBody reports whether the request carries a form body.
func (e EncodedRequest) HasBody() bool {
	return e.Method == MethodPost
}

// Encode serializes the attached parameters. A POST always produces a body,
// possibly empty; form parameters on any other method are rejected. Failures
// wrap ErrEncoding.
func (r *RequestBuilder) Encode() (EncodedRequest, error) {
	encoded := EncodedRequest{
		Method: r.method,
		Path:   r.path,
	}

	if r.query != nil && r.form != nil {
		return encoded, fmt.Errorf("%w: %w", ErrEncoding, ErrConflictingPayload)
	}

	if r.form != nil && r.method != MethodPost {
		return encoded, fmt.Errorf("%w: %w: %s %s sends no body", ErrEncoding, ErrConflictingPayload, r.method, r.path)
	}

	if r.query != nil {
		values, err := form.Encode(r.query, form.ModeQuery)
		if err != nil {
			return encoded, fmt.Errorf("%w: %s %s: %w", ErrEncoding, r.method, r.path, err)
		}

		encoded.Query = values.Encode()
	}

	if r.form != nil {
		values, err := form.Encode(r.form, form.ModeBody)
		if err != nil {
			return encoded, fmt.Errorf("%w: %s %s: %w", ErrEncoding, r.method, r.path, err)
		}

		encoded.Body = values.Encode()
	}

	return encoded, nil
}
