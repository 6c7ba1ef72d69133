package medium

import (
	"fmt"
	"strings"
)

// Status is the publish status of a post
type Status string

const (
	Public   Status = "public"
	Draft    Status = "draft"
	Unlisted Status = "unlisted"
)

// ParseStatus parses a status name, ignoring case and surrounding whitespace
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case Public:
		return Public, nil
	case Draft:
		return Draft, nil
	case Unlisted:
		return Unlisted, nil
	}
	return "", fmt.Errorf("invalid publish status %q (must be public, draft, or unlisted)", s)
}

func (s Status) String() string {
	return string(s)
}
