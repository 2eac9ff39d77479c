package openapi

import (
	"net/http"
)

// BodyKind describes how a response body is handed back to the caller
type BodyKind int

const (
	// BodyNone discards the payload; the operation returns nothing
	BodyNone BodyKind = iota
	// BodyJSON parses the payload and maps it into the result type
	BodyJSON
	// BodyString returns the payload text unparsed
	BodyString
	// BodyBytes returns the payload bytes unread by the mapper
	BodyBytes
)

func (k BodyKind) String() string {
	switch k {
	case BodyJSON:
		return "json"
	case BodyString:
		return "string"
	case BodyBytes:
		return "bytes"
	default:
		return "none"
	}
}

// Style is an OpenAPI parameter serialization style
type Style string

const (
	StyleSimple Style = "simple"
	StyleForm   Style = "form"
)

// Param declares one operation parameter
type Param struct {
	Name     string
	Style    Style
	Explode  bool
	Required bool
	// Schema is a sample value used when exporting the operation as OpenAPI.
	Schema any
}

// ResponseSpec declares what a response with a given status carries.
type ResponseSpec struct {
	Kind BodyKind
	// Model allocates a pointer to the DTO for this status. For error
	// statuses the decoded value is attached to HTTPStatusError.Payload.
	Model   func() any
	IsError bool
}

// Operation is the static description of one remote endpoint. Operations are
// declared once as package-level values and shared read-only by all calls.
type Operation struct {
	ID      string
	Summary string
	Tags    []string

	Method string
	// Path is a template such as /notification/{id}
	Path string

	PathParams   []Param
	QueryParams  []Param
	HeaderParams []Param
	FormParams   []Param

	// Accept lists the content types the operation can answer with.
	Accept []string
	// ContentTypes lists the request content types; the first is the default.
	ContentTypes []string
	// Body is a sample request body value, used only for documentation.
	Body any

	// Returns is the kind used for 2xx statuses without their own entry.
	Returns   BodyKind
	Responses map[int]ResponseSpec

	// Auth names the configured API key attached to the request, if any.
	Auth string
}

// responseFor returns the declared response for status, falling back to the
// operation default for 2xx and to an undeclared error otherwise.
func (op *Operation) responseFor(status int) ResponseSpec {
	if spec, ok := op.Responses[status]; ok {
		return spec
	}

	if isSuccess(status) {
		return ResponseSpec{Kind: op.Returns}
	}

	return ResponseSpec{IsError: true}
}

func (op *Operation) defaultContentType() string {
	if len(op.ContentTypes) > 0 {
		return op.ContentTypes[0]
	}

	return ContentTypeJSON
}

func (op *Operation) String() string {
	return op.ID
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status <= 299
}
