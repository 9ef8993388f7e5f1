package apiclient

import (
	"errors"
	"testing"
)

func TestAPIErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			"object with nested error object",
			&APIError{Status: 400, StatusText: "Bad Request", Body: []byte(`{"error": {"message": "overlap"}}`)},
			"overlap",
		},
		{
			"flat error string field",
			&APIError{Status: 400, StatusText: "Bad Request", Body: []byte(`{"error": "game is already on loan in that date range"}`)},
			"game is already on loan in that date range",
		},
		{
			"message field wins over error field",
			&APIError{Body: []byte(`{"message": "busy", "error": "other"}`)},
			"busy",
		},
		{
			"description as last object fallback",
			&APIError{Body: []byte(`{"description": "broken"}`)},
			"broken",
		},
		{
			"string payload that is itself JSON",
			&APIError{Body: []byte(`"{\"message\":\"busy\"}"`)},
			"busy",
		},
		{
			"plain text payload",
			&APIError{Body: []byte(`plain text`)},
			"plain text",
		},
		{
			"no body, transport error",
			&APIError{Err: errors.New("dial tcp: connection refused")},
			"dial tcp: connection refused",
		},
		{
			"no body, meaningful status text",
			&APIError{Status: 502, StatusText: "Bad Gateway"},
			"Bad Gateway",
		},
		{
			"nothing at all falls back",
			&APIError{},
			"could not save",
		},
		{
			"unknown error status text is not meaningful",
			&APIError{StatusText: "Unknown Error"},
			"could not save",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(); got != tt.want {
				t.Fatalf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	ae := &APIError{Body: []byte(`{"error": "overlap"}`)}
	if got := MessageOf(ae); got != "overlap" {
		t.Fatalf("got %q", got)
	}
	// 包装过的也要能挖出来
	if got := MessageOf(wrap(ae)); got != "overlap" {
		t.Fatalf("wrapped: got %q", got)
	}
	if got := MessageOf(errors.New("boom")); got != "boom" {
		t.Fatalf("plain error: got %q", got)
	}
}

func wrap(err error) error { return &wrapped{err} }

type wrapped struct{ inner error }

func (w *wrapped) Error() string { return "save: " + w.inner.Error() }
func (w *wrapped) Unwrap() error { return w.inner }
