package service

import (
	"context"

	"github.com/pixelforge/studio-api/internal/model"
)

// Exports flatten author and collaborator ids into {id, name} references.
// The helpers below resolve a whole batch of documents with one user fetch
// and fall back to "Unknown" for dangling ids, so a deleted author never
// breaks a public listing.

// nameIndex fetches the named users and returns an id -> display name map.
func nameIndex(ctx context.Context, repo UserRepository, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}
	users, err := repo.FindAllByIDs(ctx, dedupe(ids))
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names, nil
}

// personRef builds one reference, defaulting the name when unresolved.
func personRef(names map[string]string, id string) model.PersonRef {
	name, ok := names[id]
	if !ok {
		name = "Unknown"
	}
	return model.PersonRef{ID: id, Name: name}
}

// personRefs builds references for a collaborator id list.
func personRefs(names map[string]string, ids []string) []model.PersonRef {
	out := make([]model.PersonRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, personRef(names, id))
	}
	return out
}

// exportProjects renders project exports, resolving every author and
// collaborator with one user fetch.
func exportProjects(ctx context.Context, userRepo UserRepository, projects []*model.Project, withMedia bool) ([]model.ProjectExport, error) {
	var ids []string
	for _, p := range projects {
		ids = append(ids, p.AuthorID)
		ids = append(ids, p.CollaboratorIDs...)
	}
	names, err := nameIndex(ctx, userRepo, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.ProjectExport, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Export(personRef(names, p.AuthorID), personRefs(names, p.CollaboratorIDs), withMedia))
	}
	return out, nil
}

// exportBlogLists renders article list views, resolving every author and
// collaborator with one user fetch. List views never carry article bodies.
func exportBlogLists(ctx context.Context, userRepo UserRepository, blogs []*model.Blog) ([]model.BlogListExport, error) {
	var ids []string
	for _, b := range blogs {
		ids = append(ids, b.AuthorID)
		ids = append(ids, b.CollaboratorIDs...)
	}
	names, err := nameIndex(ctx, userRepo, ids)
	if err != nil {
		return nil, err
	}

	out := make([]model.BlogListExport, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, b.ExportList(personRef(names, b.AuthorID), personRefs(names, b.CollaboratorIDs)))
	}
	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
