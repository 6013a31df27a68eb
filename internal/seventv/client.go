// Package seventv is a minimal client for the 7TV GraphQL API.
//
// It covers exactly what a shuffle needs: resolving a user's active Twitch emote
// set, fetching a set's emotes and renaming a single emote inside a set.
package seventv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the public 7TV GraphQL endpoint.
const DefaultEndpoint = "https://7tv.io/v3/gql"

// maxErrorBody caps how much of a failed response body is kept in a StatusError.
const maxErrorBody = 512

// Emote is a member of an emote set. Name is the set-local alias.
type Emote struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EmoteSet is a snapshot of a 7TV emote set.
type EmoteSet struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Emotes []Emote `json:"emotes"`
}

// Config configures the client.
type Config struct {
	// Endpoint is the GraphQL endpoint URL
	Endpoint string
	// Token is the 7TV auth token sent as the seventv-auth cookie on mutations
	Token string
	// Timeout is the HTTP request timeout
	Timeout time.Duration
	// UserAgent is the User-Agent header value
	UserAgent string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		Timeout:   30 * time.Second,
		UserAgent: "emote-shuffler",
	}
}

// Client talks to the 7TV GraphQL API.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new 7TV client.
func NewClient(config Config, logger zerolog.Logger) *Client {
	if config.Endpoint == "" {
		config.Endpoint = DefaultEndpoint
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger.With().Str("component", "seventv").Logger(),
	}
}

// UserEmoteSet returns the emote set the user has active on their Twitch connection.
func (c *Client) UserEmoteSet(ctx context.Context, username string) (*EmoteSet, error) {
	req := graphqlRequest{
		OperationName: "GetUserActiveEmoteSet",
		Query:         getUserActiveEmoteSetQuery,
		Variables:     map[string]any{"username": username},
	}

	var data userActiveEmoteSetData
	gqlErrs, err := c.do(ctx, req, false, &data)
	if err != nil {
		return nil, err
	}
	if len(data.Users) == 0 {
		if len(gqlErrs) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, joinErrors(gqlErrs))
		}
		return nil, ErrUserNotFound
	}

	// users(query:) is a fuzzy search; only an exact match counts
	user := data.Users[0]
	if !strings.EqualFold(user.Username, username) {
		return nil, fmt.Errorf("%w: closest match was %q", ErrUserNotFound, user.Username)
	}

	for _, conn := range user.Connections {
		if conn.Platform == PlatformTwitch && conn.EmoteSetID != nil && *conn.EmoteSetID != "" {
			return c.EmoteSet(ctx, *conn.EmoteSetID)
		}
	}
	return nil, fmt.Errorf("%w: %s has no active Twitch emote set", ErrUserNotFound, user.Username)
}

// EmoteSet fetches the emote set with the given id.
func (c *Client) EmoteSet(ctx context.Context, setID string) (*EmoteSet, error) {
	req := graphqlRequest{
		OperationName: "GetEmoteSet",
		Query:         getEmoteSetQuery,
		Variables:     map[string]any{"set_id": setID},
	}

	var data emoteSetData
	gqlErrs, err := c.do(ctx, req, false, &data)
	if err != nil {
		return nil, err
	}
	if data.EmoteSet == nil {
		if len(gqlErrs) > 0 {
			return nil, fmt.Errorf("%w: %s: %s", ErrSetNotFound, setID, joinErrors(gqlErrs))
		}
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, setID)
	}
	if data.EmoteSet.Emotes == nil {
		data.EmoteSet.Emotes = []Emote{}
	}
	return data.EmoteSet, nil
}

// RenameEmote sets the alias of emoteID inside setID to name.
// Any error reported by 7TV fails the rename, even alongside data.
func (c *Client) RenameEmote(ctx context.Context, setID, emoteID, name string) error {
	if c.config.Token == "" {
		return ErrUnauthenticated
	}

	req := graphqlRequest{
		OperationName: "EmoteRename",
		Query:         emoteRenameMutation,
		Variables: map[string]any{
			"set_id":   setID,
			"emote_id": emoteID,
			"name":     name,
		},
	}

	gqlErrs, err := c.do(ctx, req, true, nil)
	if err != nil {
		return err
	}
	if len(gqlErrs) > 0 {
		return &RenameError{EmoteID: emoteID, Name: name, Errors: gqlErrs}
	}
	return nil
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// do posts a GraphQL request and decodes its data into out (if non-nil).
// GraphQL-level errors are returned separately from transport errors.
func (c *Client) do(ctx context.Context, gql graphqlRequest, auth bool, out any) ([]GraphQLError, error) {
	body, err := json.Marshal(gql)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", gql.OperationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequest, gql.OperationName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	if auth {
		req.Header.Set("Cookie", "seventv-auth="+c.config.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequest, gql.OperationName, err)
	}
	defer resp.Body.Close()

	c.logger.Trace().
		Str("operation", gql.OperationName).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("graphql request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: %s: %w", ErrRequest, gql.OperationName,
			&StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))})
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s response: %w", ErrRequest, gql.OperationName, err)
	}

	if out != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return nil, fmt.Errorf("%w: failed to decode %s data: %w", ErrRequest, gql.OperationName, err)
		}
	}

	return envelope.Errors, nil
}

func joinErrors(errs []GraphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
