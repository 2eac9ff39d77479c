package openapi

import (
	"net/http"
	"slices"
)

const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"
	HeaderAuthorization = "Authorization"

	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
	ContentTypeMultipart      = "multipart/form-data"
	ContentTypeText           = "text/plain"
	ContentTypeOctetStream    = "application/octet-stream"
)

// SelectHeaders picks the content negotiation headers for one call.
//
// Accept is the requested type when the operation lists it as acceptable,
// otherwise the first acceptable type. Content-Type is multipart/form-data
// for multipart bodies and the requested type otherwise.
func SelectHeaders(accept []string, requested string, multipart bool) http.Header {
	headers := make(http.Header, 2)

	switch {
	case requested != "" && slices.Contains(accept, requested):
		headers.Set(HeaderAccept, requested)
	case len(accept) > 0:
		headers.Set(HeaderAccept, accept[0])
	}

	if multipart {
		headers.Set(HeaderContentType, ContentTypeMultipart)
	} else if requested != "" {
		headers.Set(HeaderContentType, requested)
	}

	return headers
}
