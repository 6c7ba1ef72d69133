// Package medium is a client for the parts of the Medium API needed to
// publish a post: looking up the current user and creating a post.
package medium

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the root of the public Medium API
const DefaultBaseURL = "https://api.medium.com"

// ContentFormat is the only content format this client sends
const ContentFormat = "markdown"

// Client makes API calls to Medium on behalf of one integration token
type Client struct {
	BaseURL string
	Log     zerolog.Logger
	http    *http.Client
}

// User is the account that owns an integration token
type User struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	URL      string `json:"url,omitempty"`
}

// CreatePostRequest is the body sent to create a post. Optional fields
// are left out of the JSON when empty.
type CreatePostRequest struct {
	Title         string   `json:"title"`
	ContentFormat string   `json:"contentFormat"`
	Content       string   `json:"content"`
	PublishStatus Status   `json:"publishStatus"`
	Tags          []string `json:"tags,omitempty"`
	CanonicalURL  string   `json:"canonicalUrl,omitempty"`
}

// Post is a post that was created
type Post struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title,omitempty"`
	AuthorID      string `json:"authorId,omitempty"`
	URL           string `json:"url"`
	PublishStatus Status `json:"publishStatus,omitempty"`
}

// New creates a client that sends token as a bearer credential. An
// *http.Client stored in ctx under oauth2.HTTPClient is used as the
// underlying transport.
func New(ctx context.Context, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
	})
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Log:     zerolog.Nop(),
		http:    oauth2.NewClient(ctx, ts),
	}
}

// Me fetches the user that owns the token
func (c *Client) Me(ctx context.Context) (*User, error) {
	user, err := call[User](ctx, c, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, &DecodeError{Op: "GET /v1/me", Err: errors.New("response contained no user id")}
	}
	return user, nil
}

// CreatePost creates a post under the given author
func (c *Client) CreatePost(ctx context.Context, authorID string, req *CreatePostRequest) (*Post, error) {
	path := "/v1/users/" + url.PathEscape(authorID) + "/posts"
	post, err := call[Post](ctx, c, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}
	if post.URL == "" {
		return nil, &DecodeError{Op: "POST " + path, Err: errors.New("response contained no post url")}
	}
	return post, nil
}

// call performs one request and decodes the response into either the
// data it carries or an *APIError
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (*T, error) {
	op := method + " " + path

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("error marshalling request to %s: %w", op, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return nil, fmt.Errorf("error creating request to %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Charset", "utf-8")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.Log.Debug().Str("method", method).Str("url", req.URL.String()).Msg("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("error reading response body: %w", err)}
	}

	c.Log.Debug().Int("status", resp.StatusCode).Int("bytes", len(buf)).Msg("received response")

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	var r Response[T]
	if err := json.Unmarshal(buf, &r); err != nil {
		if !ok {
			return nil, &TransportError{Op: op, Status: resp.Status}
		}
		return nil, &DecodeError{Op: op, Err: err}
	}

	// an error payload wins over the status code so its message reaches the user
	if r.Err != nil {
		return nil, r.Err.FirstError()
	}
	if !ok {
		return nil, &TransportError{Op: op, Status: resp.Status}
	}
	return r.Ok, nil
}
