// Package post reads a markdown file with a front-matter header and turns
// it into a request to create a Medium post
package post

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/alexflint/markmedium/medium"
)

// InputError is returned when the markdown file or its metadata cannot be used
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Metadata describes one post
type Metadata struct {
	Title        string
	Tags         []string
	CanonicalURL string
	Status       medium.Status
}

// Document is a markdown file split into its metadata and body
type Document struct {
	Metadata Metadata
	Content  string
}

// Load reads a markdown file and parses its front-matter
func Load(path string) (*Document, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	if !utf8.Valid(buf) {
		return nil, &InputError{Path: path, Err: errors.New("file is not valid UTF-8")}
	}

	d, err := Parse(string(buf))
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			inputErr.Path = path
		}
		return nil, err
	}
	return d, nil
}

// Parse splits markdown content into front-matter metadata and body, and
// validates the metadata
func Parse(content string) (*Document, error) {
	fm, body, err := splitFrontMatter(content)
	if err != nil {
		return nil, &InputError{Err: err}
	}

	md := Metadata{
		Title:        strings.TrimSpace(fm.Title),
		CanonicalURL: strings.TrimSpace(fm.CanonicalURL),
		Status:       medium.Public,
	}
	if md.Title == "" {
		return nil, &InputError{Err: errors.New("front-matter must contain a non-empty title")}
	}
	if fm.Status != "" {
		md.Status, err = medium.ParseStatus(fm.Status)
		if err != nil {
			return nil, &InputError{Err: err}
		}
	}
	for _, tag := range fm.Tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			md.Tags = append(md.Tags, tag)
		}
	}

	return &Document{Metadata: md, Content: body}, nil
}

// Request builds the body of the request that creates this post. When a
// canonical URL is set, a line pointing back to it is appended to the content.
func (d *Document) Request() (*medium.CreatePostRequest, error) {
	if strings.TrimSpace(d.Metadata.Title) == "" {
		return nil, &InputError{Err: errors.New("post title must not be empty")}
	}

	content := d.Content
	if d.Metadata.CanonicalURL != "" {
		footer, err := canonicalFooter(d.Metadata.CanonicalURL)
		if err != nil {
			return nil, &InputError{Err: err}
		}
		content += footer
	}

	status := d.Metadata.Status
	if status == "" {
		status = medium.Public
	}

	return &medium.CreatePostRequest{
		Title:         d.Metadata.Title,
		ContentFormat: medium.ContentFormat,
		Content:       content,
		PublishStatus: status,
		Tags:          d.Metadata.Tags,
		CanonicalURL:  d.Metadata.CanonicalURL,
	}, nil
}

// canonicalFooter generates the "Originally published at" line for a post
// whose canonical home is elsewhere
func canonicalFooter(canonical string) (string, error) {
	u, err := url.Parse(canonical)
	if err != nil {
		return "", fmt.Errorf("invalid canonical_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid canonical_url %q: must be an absolute URL", canonical)
	}

	site := url.URL{Scheme: u.Scheme, Host: u.Host}
	return fmt.Sprintf("\n\n---\n\n*Originally published at [%s](%s).*", site.String(), u.String()), nil
}
