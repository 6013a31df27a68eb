package seventv

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when the username does not resolve to a user
	// with an active Twitch emote set.
	ErrUserNotFound = errors.New("queried user was not found")

	// ErrSetNotFound is returned when the emote set id does not exist.
	ErrSetNotFound = errors.New("emote set not found")

	// ErrUnauthenticated is returned when a mutation is attempted without a token.
	ErrUnauthenticated = errors.New("no 7TV auth token configured, set SEVENTV_TOKEN")

	// ErrRequest wraps transport and decoding failures.
	ErrRequest = errors.New("7TV request failed")
)

// GraphQLError is a single entry of a GraphQL response's errors list.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// RenameError is returned when 7TV answered a rename with one or more errors.
type RenameError struct {
	EmoteID string
	Name    string
	Errors  []GraphQLError
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("renaming emote %s to %q failed: %s", e.EmoteID, e.Name, joinErrors(e.Errors))
}

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP status %d: %s", e.StatusCode, e.Body)
}
