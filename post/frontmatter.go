package post

// This file contains utilities for splitting the front-matter block off the
// top of a markdown file

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexflint/go-restructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// a regular expression for a leading front-matter block delimited by
// "---" (yaml) or "+++" (toml)
type frontMatterBlock struct {
	_      string `^`
	Open   string `(?:---|\+\+\+)`
	_      string `[ \t]*\r?\n`
	Header string `(?s:.*?\n)??`
	Close  string `(?:---|\+\+\+)`
	_      string `[ \t]*(?:\r?\n|$)`
	Body   string `(?s:.*)`
}

var frontMatterPattern = restructure.MustCompile(&frontMatterBlock{}, restructure.Options{})

// ErrNoFrontMatter is wrapped in the InputError returned for files that do
// not start with a front-matter block
var ErrNoFrontMatter = errors.New(`file does not start with a front-matter block ("---" or "+++")`)

// frontMatter is the set of keys recognized in the front-matter header
type frontMatter struct {
	Title        string   `yaml:"title" toml:"title"`
	Tags         []string `yaml:"tags" toml:"tags"`
	CanonicalURL string   `yaml:"canonical_url" toml:"canonical_url"`
	Status       string   `yaml:"status" toml:"status"`
}

// splitFrontMatter separates the front-matter header from the body and
// decodes the header as yaml or toml depending on its delimiters
func splitFrontMatter(content string) (*frontMatter, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	var block frontMatterBlock
	if !frontMatterPattern.Find(&block, content) {
		return nil, "", ErrNoFrontMatter
	}
	if block.Open != block.Close {
		return nil, "", fmt.Errorf("front-matter opened with %q but closed with %q", block.Open, block.Close)
	}

	var fm frontMatter
	switch block.Open {
	case "---":
		err := yaml.Unmarshal([]byte(block.Header), &fm)
		if err != nil {
			return nil, "", fmt.Errorf("error parsing yaml front-matter: %w", err)
		}
	case "+++":
		err := toml.Unmarshal([]byte(block.Header), &fm)
		if err != nil {
			return nil, "", fmt.Errorf("error parsing toml front-matter: %w", err)
		}
	}

	return &fm, block.Body, nil
}
