package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, KindUnknown},
		{"foreign", errors.New("boom"), KindUnknown},
		{"invalid argument", &InvalidArgumentError{Operation: "op", Param: "id"}, KindInvalidArgument},
		{"transport", &TransportError{Operation: "op", Err: context.DeadlineExceeded}, KindTransport},
		{"status", &HTTPStatusError{Operation: "op", StatusCode: 500}, KindHTTPStatus},
		{"decode", &DecodeError{Operation: "op", Err: errEmptyBody}, KindDecode},
		{"wrapped", fmt.Errorf("listing: %w", &HTTPStatusError{StatusCode: 401}), KindHTTPStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorsMatchOneKind(t *testing.T) {
	sentinels := []error{ErrInvalidArgument, ErrTransport, ErrHTTPStatus, ErrDecode}

	errs := []error{
		&InvalidArgumentError{Operation: "op", Param: "id"},
		&TransportError{Operation: "op", Err: errors.New("dial tcp: refused")},
		&HTTPStatusError{Operation: "op", StatusCode: 404},
		&DecodeError{Operation: "op", Err: errNullBody},
	}

	for _, err := range errs {
		matched := 0
		for _, sentinel := range sentinels {
			if errors.Is(err, sentinel) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "%T matched %d kinds", err, matched)
	}
}

func TestErrorMessages(t *testing.T) {
	argErr := &InvalidArgumentError{Operation: "getNotification", Param: "id"}
	assert.Contains(t, argErr.Error(), `missing required parameter "id" when calling getNotification`)

	statusErr := &HTTPStatusError{
		URL:        "https://api.modrinth.com/v2/notification/x",
		StatusCode: 500,
		Body:       []byte(strings.Repeat("a", 300)),
	}
	msg := statusErr.Error()
	assert.True(t, strings.HasPrefix(msg, "[500] Error connecting to the API (https://api.modrinth.com/v2/notification/x)"))
	assert.True(t, strings.HasSuffix(msg, "..."))

	transportErr := &TransportError{Err: context.Canceled}
	assert.ErrorIs(t, transportErr, context.Canceled)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "InvalidArgument", KindInvalidArgument.String())
	assert.Equal(t, "TransportFailure", KindTransport.String())
	assert.Equal(t, "HttpStatusError", KindHTTPStatus.String())
	assert.Equal(t, "DecodeFailure", KindDecode.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
