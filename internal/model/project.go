package model

import "time"

// Portfolio is one of the three fixed project categories.
type Portfolio string

const (
	PortfolioGame     Portfolio = "GAME"
	PortfolioGraphics Portfolio = "GRAPHICS"
	PortfolioRnD      Portfolio = "RND"
)

// IsValidPortfolio reports whether s names a known portfolio category.
func IsValidPortfolio(s string) bool {
	switch Portfolio(s) {
	case PortfolioGame, PortfolioGraphics, PortfolioRnD:
		return true
	}
	return false
}

// Project is the internal portfolio project entity.
type Project struct {
	ID               string    `json:"id"`
	Portfolio        Portfolio `json:"portfolio"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Tags             []string  `json:"tags"`
	AuthorID         string    `json:"author_id"`
	CollaboratorIDs  []string  `json:"collaborator_ids"`
	Links            []Link    `json:"links"`
	CoverImgMediaKey *string   `json:"cover_img_media_key"`
	MediaKeys        []string  `json:"media_keys"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// PersonRef is the flattened {id, name} author/collaborator reference.
type PersonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectExport is the wire shape of a project with resolved references.
// Media is withheld from list views by the exporting service.
type ProjectExport struct {
	ID               string      `json:"id"`
	Portfolio        Portfolio   `json:"portfolio"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Tags             []string    `json:"tags"`
	Author           PersonRef   `json:"author"`
	Collaborators    []PersonRef `json:"collaborators"`
	Links            []Link      `json:"links"`
	CoverImgMediaKey *string     `json:"coverImgMediaKey"`
	Media            []string    `json:"media,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// ProjectListItem is the compact {id, portfolio, title} index entry.
type ProjectListItem struct {
	ID        string    `json:"id"`
	Portfolio Portfolio `json:"portfolio"`
	Title     string    `json:"title"`
}

// Export renders the full view of a project with pre-resolved name refs.
func (p *Project) Export(author PersonRef, collaborators []PersonRef, withMedia bool) ProjectExport {
	out := ProjectExport{
		ID:               p.ID,
		Portfolio:        p.Portfolio,
		Title:            p.Title,
		Description:      p.Description,
		Tags:             p.Tags,
		Author:           author,
		Collaborators:    collaborators,
		Links:            p.Links,
		CoverImgMediaKey: p.CoverImgMediaKey,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if withMedia {
		out.Media = p.MediaKeys
	}
	return out
}

// ExportListItem renders the compact index view.
func (p *Project) ExportListItem() ProjectListItem {
	return ProjectListItem{ID: p.ID, Portfolio: p.Portfolio, Title: p.Title}
}

// ProjectGetTarget discriminates the project read operation.
type ProjectGetTarget string

const (
	ProjectGetAll       ProjectGetTarget = "all"
	ProjectGetAllAsList ProjectGetTarget = "all_as_list"
	ProjectGetMy        ProjectGetTarget = "my"
)

// PortfolioFilter widens Portfolio with the "any" wildcard used by reads.
type PortfolioFilter string

const (
	PortfolioAny        PortfolioFilter = "any"
	PortfolioFilterGame PortfolioFilter = "game"
	PortfolioFilterGfx  PortfolioFilter = "graphics"
	PortfolioFilterRnD  PortfolioFilter = "rnd"
)

// Category maps a non-wildcard filter to its portfolio category.
func (f PortfolioFilter) Category() (Portfolio, bool) {
	switch f {
	case PortfolioFilterGame:
		return PortfolioGame, true
	case PortfolioFilterGfx:
		return PortfolioGraphics, true
	case PortfolioFilterRnD:
		return PortfolioRnD, true
	}
	return "", false
}

// IsValidPortfolioFilter reports whether s names a known filter value.
func IsValidPortfolioFilter(s string) bool {
	switch PortfolioFilter(s) {
	case PortfolioAny, PortfolioFilterGame, PortfolioFilterGfx, PortfolioFilterRnD:
		return true
	}
	return false
}

// ProjectGetRequest is the validated project read request.
type ProjectGetRequest struct {
	Target    ProjectGetTarget
	Portfolio PortfolioFilter
}

// ProjectCreateRequest creates a project authored by the session user.
type ProjectCreateRequest struct {
	Portfolio        Portfolio
	Title            string
	Description      string
	Tags             []string
	Links            []Link
	CoverImgMediaKey *string
}

// ProjectUpdateRequest edits a project. Nil fields are left untouched.
type ProjectUpdateRequest struct {
	ID               string
	Title            *string
	Description      *string
	Tags             []string
	CollaboratorIDs  []string
	Links            []Link
	CoverImgMediaKey *string
	MediaKeys        []string
}

// ProjectRemoveRequest removes a project.
type ProjectRemoveRequest struct {
	ID string
}
