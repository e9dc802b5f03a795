package model

import "time"

// Blog is the internal article entity. Slug is globally unique and treated
// as immutable: public reads address articles by slug, not id.
type Blog struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Content          string    `json:"content"`
	Tags             []string  `json:"tags"`
	AuthorID         string    `json:"author_id"`
	CollaboratorIDs  []string  `json:"collaborator_ids"`
	CoverImgMediaKey *string   `json:"cover_img_media_key"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BlogListExport is the list view of an article: everything but the body.
type BlogListExport struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Tags             []string    `json:"tags"`
	Author           PersonRef   `json:"author"`
	Collaborators    []PersonRef `json:"collaborators"`
	CoverImgMediaKey *string     `json:"coverImgMediaKey"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BlogExport is the single-article view including the body content.
type BlogExport struct {
	BlogListExport
	Content string `json:"content"`
}

// BlogListItem is the compact {id, title} index entry.
type BlogListItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ExportList renders the list view with pre-resolved name refs.
func (b *Blog) ExportList(author PersonRef, collaborators []PersonRef) BlogListExport {
	return BlogListExport{
		ID:               b.ID,
		Title:            b.Title,
		Slug:             b.Slug,
		Tags:             b.Tags,
		Author:           author,
		Collaborators:    collaborators,
		CoverImgMediaKey: b.CoverImgMediaKey,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// Export renders the full single-article view.
func (b *Blog) Export(author PersonRef, collaborators []PersonRef) BlogExport {
	return BlogExport{
		BlogListExport: b.ExportList(author, collaborators),
		Content:        b.Content,
	}
}

// ExportListItem renders the compact index view.
func (b *Blog) ExportListItem() BlogListItem {
	return BlogListItem{ID: b.ID, Title: b.Title}
}

// BlogGetTarget discriminates the blog read operation.
type BlogGetTarget string

const (
	BlogGetAll       BlogGetTarget = "all"
	BlogGetAllAsList BlogGetTarget = "all_as_list"
	BlogGetMy        BlogGetTarget = "my"
	BlogGetBySlug    BlogGetTarget = "by_slug"
)

// BlogGetRequest is the validated blog read request; Slug is set for BY_SLUG.
type BlogGetRequest struct {
	Target BlogGetTarget
	Slug   string
}

// BlogCreateRequest creates an article authored by the session user.
type BlogCreateRequest struct {
	Title            string
	Slug             string
	Content          string
	Tags             []string
	CoverImgMediaKey *string
}

// BlogUpdateRequest edits an article. Nil fields are left untouched; the
// slug is deliberately not editable.
type BlogUpdateRequest struct {
	ID               string
	Title            *string
	Content          *string
	Tags             []string
	CollaboratorIDs  []string
	CoverImgMediaKey *string
}

// BlogRemoveRequest removes an article.
type BlogRemoveRequest struct {
	ID string
}
