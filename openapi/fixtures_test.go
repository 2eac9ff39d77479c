package openapi

import (
	"errors"
	"net/http"
	"time"
)

type testItem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Read    bool      `json:"read"`
	Created time.Time `json:"created"`
	Tags    []string  `json:"tags,omitempty"`
}

type testAuthError struct {
	Error       string `json:"error"`
	Description string `json:"description"`
}

func authErrorResponse() ResponseSpec {
	return ResponseSpec{Kind: BodyJSON, Model: func() any { return new(testAuthError) }, IsError: true}
}

var (
	getItemOp = &Operation{
		ID:         "getItem",
		Method:     http.MethodGet,
		Path:       "/item/{id}",
		PathParams: []Param{{Name: "id", Style: StyleSimple, Required: true, Schema: ""}},
		Accept:     []string{ContentTypeJSON},
		Returns:    BodyJSON,
		Responses: map[int]ResponseSpec{
			http.StatusOK:           {Kind: BodyJSON, Model: func() any { return new(testItem) }},
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: HeaderAuthorization,
	}

	getItemsOp = &Operation{
		ID:     "getItems",
		Method: http.MethodGet,
		Path:   "/items",
		QueryParams: []Param{
			{Name: "ids", Style: StyleForm, Explode: true, Required: true, Schema: []string{}},
			{Name: "limit", Style: StyleForm, Explode: true, Schema: 0},
		},
		Accept:  []string{ContentTypeJSON},
		Returns: BodyJSON,
		Responses: map[int]ResponseSpec{
			http.StatusOK:           {Kind: BodyJSON, Model: func() any { return new([]testItem) }},
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: HeaderAuthorization,
	}

	joinedItemsOp = &Operation{
		ID:          "getItemsJoined",
		Method:      http.MethodGet,
		Path:        "/items",
		QueryParams: []Param{{Name: "ids", Style: StyleForm, Explode: false, Required: true, Schema: []string{}}},
		Accept:      []string{ContentTypeJSON},
		Returns:     BodyJSON,
	}

	readItemOp = &Operation{
		ID:         "readItem",
		Method:     http.MethodPatch,
		Path:       "/user/{id|username}/item/{id}",
		PathParams: []Param{{Name: "id|username", Required: true}, {Name: "id", Required: true}},
		Accept:     []string{ContentTypeJSON},
		Returns:    BodyNone,
		Responses: map[int]ResponseSpec{
			http.StatusNoContent:    {Kind: BodyNone},
			http.StatusUnauthorized: authErrorResponse(),
		},
		Auth: HeaderAuthorization,
	}

	headerItemOp = &Operation{
		ID:           "headerItem",
		Method:       http.MethodGet,
		Path:         "/item",
		HeaderParams: []Param{{Name: "X-Trace", Required: false}, {Name: "Accept", Required: false}},
		Accept:       []string{ContentTypeJSON, ContentTypeText},
		Returns:      BodyJSON,
		Auth:         HeaderAuthorization,
	}

	uploadOp = &Operation{
		ID:     "upload",
		Method: http.MethodPost,
		Path:   "/upload",
		FormParams: []Param{
			{Name: "data", Required: true, Schema: testItem{}},
			{Name: "file", Schema: File{}},
			{Name: "note"},
		},
		Accept:       []string{ContentTypeJSON},
		ContentTypes: []string{ContentTypeJSON},
		Returns:      BodyJSON,
	}

	urlencodedOp = &Operation{
		ID:           "submit",
		Method:       http.MethodPost,
		Path:         "/submit",
		FormParams:   []Param{{Name: "name", Required: true}, {Name: "tags", Schema: []string{}}},
		Accept:       []string{ContentTypeJSON},
		ContentTypes: []string{ContentTypeFormURLEncoded},
		Returns:      BodyNone,
	}

	modifyOp = &Operation{
		ID:           "modify",
		Method:       http.MethodPatch,
		Path:         "/item/{id}",
		PathParams:   []Param{{Name: "id", Required: true}},
		Accept:       []string{ContentTypeJSON},
		ContentTypes: []string{ContentTypeJSON},
		Body:         testItem{},
		Returns:      BodyNone,
	}

	textOp = &Operation{
		ID:      "text",
		Method:  http.MethodGet,
		Path:    "/text",
		Accept:  []string{ContentTypeText},
		Returns: BodyString,
	}

	rawOp = &Operation{
		ID:      "raw",
		Method:  http.MethodGet,
		Path:    "/raw",
		Accept:  []string{ContentTypeOctetStream},
		Returns: BodyBytes,
	}
)

// failingDoer fails the test if any request reaches the transport
type failingDoer struct {
	calls int
}

func (d *failingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	return nil, errors.New("transport must not be reached")
}
