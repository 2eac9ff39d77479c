package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/modrinth-go/modrinth"
	"github.com/s0up4200/modrinth-go/openapi"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name: "unauthorized with payload",
			err: &openapi.HTTPStatusError{
				StatusCode: 401,
				Payload:    &modrinth.AuthError{Error: "unauthorized", Description: "Invalid token"},
			},
			contains: "authentication failed (unauthorized): Invalid token",
		},
		{
			name:     "unauthorized without payload",
			err:      &openapi.HTTPStatusError{StatusCode: 401},
			contains: "MODRINTH_API_TOKEN",
		},
		{
			name:     "retired",
			err:      &openapi.HTTPStatusError{StatusCode: 410},
			contains: "has been retired",
		},
		{
			name:     "transport",
			err:      &openapi.TransportError{Operation: "getUser", Method: "GET", URL: "http://x", Err: errors.New("refused")},
			contains: "could not reach the Modrinth API",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			contains: "Error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" y \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, confirm(strings.NewReader(tt.input)), "input %q", tt.input)
	}
}

func TestPrintNotifications(t *testing.T) {
	typ := modrinth.NotificationProjectUpdate
	notifications := []modrinth.Notification{
		{
			ID:      "UMqKkXcN",
			Type:    &typ,
			Title:   "Sodium has been updated",
			Text:    "Version 0.5.0 is out",
			Link:    "/project/sodium",
			Created: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			ID:    "Xa9Bq2Lm",
			Title: "Legacy",
			Read:  true,
		},
	}

	var buf bytes.Buffer
	printNotifications(&buf, notifications)
	out := buf.String()

	assert.Contains(t, out, "* UMqKkXcN [project_update] Sodium has been updated")
	assert.Contains(t, out, "Version 0.5.0 is out")
	assert.Contains(t, out, "Created: 2024-05-01 12:30  Link: /project/sodium")
	assert.Contains(t, out, "  Xa9Bq2Lm [")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, []modrinth.User{{ID: "abc", Username: "jai"}}))
	assert.Contains(t, buf.String(), `"username": "jai"`)
}

func TestTargetIDs(t *testing.T) {
	_, err := targetIDs(nil, nil, false, nil)
	assert.Error(t, err)

	_, err = targetIDs(nil, []string{"a"}, true, nil)
	assert.Error(t, err)

	ids, err := targetIDs(nil, []string{"a", "b"}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestOpenAPICommand(t *testing.T) {
	var buf bytes.Buffer
	openapiCmd.SetOut(&buf)
	t.Cleanup(func() { openapiCmd.SetOut(nil) })

	require.NoError(t, runOpenAPI(openapiCmd, nil))

	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/notification/{id}")
}
