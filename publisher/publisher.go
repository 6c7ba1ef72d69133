// Package publisher implements the two operations of markmedium: storing
// credentials for an integration token, and publishing a markdown file.
package publisher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/markmedium/credentials"
	"github.com/alexflint/markmedium/medium"
	"github.com/alexflint/markmedium/post"
	"github.com/kr/pretty"
	"github.com/rs/zerolog"
)

// Options are shared by Init and Publish
type Options struct {
	ConfigPath string          // location of the credentials file; defaults to ~/.markmedium
	APIURL     string          // root of the Medium API; defaults to medium.DefaultBaseURL
	Log        *zerolog.Logger // nil means no logging
}

func (o *Options) logger() zerolog.Logger {
	if o.Log == nil {
		return zerolog.Nop()
	}
	return *o.Log
}

func (o *Options) configPath() (string, error) {
	if o.ConfigPath != "" {
		return o.ConfigPath, nil
	}
	return credentials.DefaultPath()
}

func (o *Options) client(ctx context.Context, token string) *medium.Client {
	c := medium.New(ctx, o.APIURL, token)
	c.Log = o.logger()
	return c
}

// Init exchanges an integration token for the id of the user that owns it
// and saves both to the credentials file. It returns the path of that file.
func Init(ctx context.Context, token string, opts Options) (string, error) {
	log := opts.logger()

	token = strings.TrimSpace(token)
	if token == "" {
		return "", &post.InputError{Err: errors.New("integration token must not be empty")}
	}

	path, err := opts.configPath()
	if err != nil {
		return "", err
	}

	user, err := opts.client(ctx, token).Me(ctx)
	if err != nil {
		return "", err
	}
	log.Debug().Str("id", user.ID).Str("username", user.Username).Msg("token belongs to user")

	err = credentials.Save(path, &credentials.Credentials{
		Token:    token,
		AuthorID: user.ID,
	})
	if err != nil {
		return "", err
	}

	log.Debug().Str("path", path).Msg("saved credentials")
	return path, nil
}

// Draft is a post that is ready to be sent
type Draft struct {
	Credentials *credentials.Credentials
	Request     *medium.CreatePostRequest
}

// Prepare loads credentials and the markdown file and builds the request
// that would create the post, without sending anything
func Prepare(file string, opts Options) (*Draft, error) {
	path, err := opts.configPath()
	if err != nil {
		return nil, err
	}

	creds, err := credentials.Load(path)
	if err != nil {
		return nil, err
	}

	doc, err := post.Load(file)
	if err != nil {
		return nil, err
	}

	req, err := doc.Request()
	if err != nil {
		return nil, err
	}

	return &Draft{Credentials: creds, Request: req}, nil
}

// Publish creates a post from a markdown file and returns its URL
func Publish(ctx context.Context, file string, opts Options) (string, error) {
	log := opts.logger()

	draft, err := Prepare(file, opts)
	if err != nil {
		return "", err
	}

	log.Debug().Msgf("create post request for %s: %s", file, pretty.Sprint(draft.Request))

	p, err := opts.client(ctx, draft.Credentials.Token).CreatePost(ctx, draft.Credentials.AuthorID, draft.Request)
	if err != nil {
		var apiErr *medium.APIError
		if errors.As(err, &apiErr) {
			// the remote message is reported verbatim
			return "", apiErr
		}
		return "", fmt.Errorf("error creating post: %w", err)
	}

	log.Debug().Str("id", p.ID).Str("status", p.PublishStatus.String()).Msg("created post")
	return p.URL, nil
}
