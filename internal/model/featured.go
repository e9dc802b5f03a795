package model

import (
	"encoding/json"
	"time"
)

// FeaturedType classifies what a featured pointer references.
type FeaturedType string

const (
	FeaturedBlog     FeaturedType = "BLOG"
	FeaturedGame     FeaturedType = "GAME"
	FeaturedGraphics FeaturedType = "GRAPHICS"
	FeaturedRnD      FeaturedType = "RND"
)

// IsValidFeaturedType reports whether s names a known featured type.
func IsValidFeaturedType(s string) bool {
	switch FeaturedType(s) {
	case FeaturedBlog, FeaturedGame, FeaturedGraphics, FeaturedRnD:
		return true
	}
	return false
}

// Featured is a curation pointer to a blog or project. It never owns the
// content it references; at most one live pointer exists per content id.
type Featured struct {
	ID          string       `json:"id"`
	ContentType FeaturedType `json:"content_type"`
	ContentID   string       `json:"content_id"`
	IsHighlight bool         `json:"is_highlight"`
	CreatedAt   time.Time    `json:"created_at"`
}

// HighlightCard is one entry of the cross-kind highlight feed. It is a
// tagged union: consumers must switch on Type before reading the tail.
// Type == BLOG carries ReadURL only; any other type always carries
// GithubLink and LiveDemoLink, null when the project has no such link.
// The two tails are never co-present.
type HighlightCard struct {
	ID               string       `json:"id"`
	Type             FeaturedType `json:"type"`
	Title            string       `json:"title"`
	Tags             []string     `json:"tags"`
	CoverImgMediaKey *string      `json:"coverImgMediaKey"`

	ReadURL      *string `json:"readUrl"`
	GithubLink   *string `json:"githubLink"`
	LiveDemoLink *string `json:"liveDemoLink"`
}

// MarshalJSON enforces the union on the wire: only the tail that belongs to
// the card's kind is emitted, and project link fields stay present as
// explicit nulls when unresolved.
func (c HighlightCard) MarshalJSON() ([]byte, error) {
	type head struct {
		ID               string       `json:"id"`
		Type             FeaturedType `json:"type"`
		Title            string       `json:"title"`
		Tags             []string     `json:"tags"`
		CoverImgMediaKey *string      `json:"coverImgMediaKey"`
	}
	tags := c.Tags
	if tags == nil {
		tags = []string{}
	}
	h := head{
		ID:               c.ID,
		Type:             c.Type,
		Title:            c.Title,
		Tags:             tags,
		CoverImgMediaKey: c.CoverImgMediaKey,
	}
	if c.Type == FeaturedBlog {
		return json.Marshal(struct {
			head
			ReadURL *string `json:"readUrl"`
		}{h, c.ReadURL})
	}
	return json.Marshal(struct {
		head
		GithubLink   *string `json:"githubLink"`
		LiveDemoLink *string `json:"liveDemoLink"`
	}{h, c.GithubLink, c.LiveDemoLink})
}

// FeaturedListItem is the compact curation index entry: the pointer with
// its content title resolved, regardless of highlight state.
type FeaturedListItem struct {
	ID           string       `json:"id"`
	ContentType  FeaturedType `json:"contentType"`
	ContentTitle string       `json:"contentTitle"`
	IsHighlight  bool         `json:"isHighlight"`
}

// FeaturedGetTarget discriminates the featured read operation. The four
// content kinds double as per-kind listing targets.
type FeaturedGetTarget string

const (
	FeaturedGetHighlight FeaturedGetTarget = "highlight"
	FeaturedGetAllAsList FeaturedGetTarget = "all_as_list"
	FeaturedGetBlog      FeaturedGetTarget = "blog"
	FeaturedGetGame      FeaturedGetTarget = "game"
	FeaturedGetGraphics  FeaturedGetTarget = "graphics"
	FeaturedGetRnD       FeaturedGetTarget = "rnd"
)

// ContentType maps a per-kind listing target to its featured type.
func (t FeaturedGetTarget) ContentType() (FeaturedType, bool) {
	switch t {
	case FeaturedGetBlog:
		return FeaturedBlog, true
	case FeaturedGetGame:
		return FeaturedGame, true
	case FeaturedGetGraphics:
		return FeaturedGraphics, true
	case FeaturedGetRnD:
		return FeaturedRnD, true
	}
	return "", false
}

// FeaturedGetRequest is the validated featured read request.
type FeaturedGetRequest struct {
	Target FeaturedGetTarget
}

// FeaturedCreateRequest curates a piece of content.
type FeaturedCreateRequest struct {
	ContentType FeaturedType
	ContentID   string
	IsHighlight bool
}

// FeaturedUpdateRequest flips the highlight flag on an existing pointer.
// Content identity is never mutated in place.
type FeaturedUpdateRequest struct {
	ID          string
	IsHighlight bool
}

// FeaturedRemoveRequest retires a pointer.
type FeaturedRemoveRequest struct {
	ID string
}
