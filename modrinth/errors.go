package modrinth

import (
	"github.com/s0up4200/modrinth-go/openapi"
)

// IsRetired reports whether err is a 410 response, which the API returns for
// retired versions. Such calls must not be retried.
func IsRetired(err error) bool {
	statusErr, ok := openapi.AsHTTPStatusError(err)
	return ok && statusErr.IsGone()
}

// IsUnauthorized reports whether err is a 401 response
func IsUnauthorized(err error) bool {
	statusErr, ok := openapi.AsHTTPStatusError(err)
	return ok && statusErr.IsUnauthorized()
}

// AuthErrorFrom returns the decoded body of a 401 response, if there is one
func AuthErrorFrom(err error) (*AuthError, bool) {
	statusErr, ok := openapi.AsHTTPStatusError(err)
	if !ok {
		return nil, false
	}

	authErr, ok := statusErr.Payload.(*AuthError)
	return authErr, ok && authErr != nil
}
