package medium

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/me", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		io.WriteString(w, `{"data":{"id":"abc123","username":"alex"}}`)
	}))
	defer srv.Close()

	c := New(context.Background(), srv.URL, "T")
	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", user.ID)
	assert.Equal(t, "alex", user.Username)
}

func TestMeErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"errors":[{"message":"Token was invalid.","code":6003},{"message":"second"}]}`)
	}))
	defer srv.Close()

	c := New(context.Background(), srv.URL, "bad")
	_, err := c.Me(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Token was invalid.", apiErr.Message)
	assert.Equal(t, 6003, apiErr.Code)
	assert.Equal(t, "Token was invalid.", err.Error())
}

func TestMeErrorPayloadWithUnauthorizedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"errors":[{"message":"Invalid token"}]}`)
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL, "bad").Me(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestMeMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":{}}`)
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL, "T").Me(context.Background())
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>not json</html>`)
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL, "T").Me(context.Background())
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "GET /v1/me", decodeErr.Op)
}

func TestNon2xxWithoutErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL, "T").Me(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, transportErr.Status, "502")
}

func TestConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(context.Background(), url, "T").Me(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Error(t, transportErr.Err)
}

func TestCreatePost(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/users/A/posts", r.URL.Path)
		assert.Equal(t, "Bearer T", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, `{"data":{"id":"p1","url":"https://medium.com/p/abc","publishStatus":"draft"}}`)
	}))
	defer srv.Close()

	c := New(context.Background(), srv.URL+"/", "T")
	p, err := c.CreatePost(context.Background(), "A", &CreatePostRequest{
		Title:         "Hi",
		ContentFormat: ContentFormat,
		Content:       "hello",
		PublishStatus: Draft,
		Tags:          []string{"go", "cli"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://medium.com/p/abc", p.URL)
	assert.Equal(t, Draft, p.PublishStatus)

	assert.Equal(t, map[string]interface{}{
		"title":         "Hi",
		"contentFormat": "markdown",
		"content":       "hello",
		"publishStatus": "draft",
		"tags":          []interface{}{"go", "cli"},
	}, body)
}

func TestCreatePostErrorPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"errors":[{"message":"Invalid token"}]}`)
	}))
	defer srv.Close()

	_, err := New(context.Background(), srv.URL, "T").CreatePost(context.Background(), "A", &CreatePostRequest{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, "Invalid token", err.Error())
}
