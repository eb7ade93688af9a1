package app

import (
	"context"
	"strings"

	"campus-connect-client/model"
	"campus-connect-client/query"
)

func (a *App) LostFoundItems(ctx context.Context) ([]model.LostFoundItem, error) {
	return query.Fetch(ctx, a.Cache, "lostFound", a.Client.LostFound.List)
}

func (a *App) ReportLostFoundItem(ctx context.Context, req model.CreateLostFoundRequest) (*model.LostFoundItem, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"lostFound"},
		"Item reported successfully!", "Failed to report item",
		func(ctx context.Context) (*model.LostFoundItem, error) {
			return a.Client.LostFound.Create(ctx, req)
		})
}

func (a *App) UpdateLostFoundItem(ctx context.Context, id string, req model.UpdateLostFoundRequest) (*model.LostFoundItem, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"lostFound"},
		"Item updated successfully!", "Failed to update item",
		func(ctx context.Context) (*model.LostFoundItem, error) {
			return a.Client.LostFound.Update(ctx, id, req)
		})
}

func (a *App) DeleteLostFoundItem(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"lostFound"},
		"Item deleted successfully!", "Failed to delete item",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.LostFound.Delete(ctx, id)
		})
	return err
}

type LostFoundFilter struct {
	Search   string
	Type     string
	Category string
	Status   string
}

func FilterLostFound(items []model.LostFoundItem, f LostFoundFilter) []model.LostFoundItem {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.LostFoundItem, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) &&
			!strings.Contains(strings.ToLower(item.Location), search) {
			continue
		}
		if f.Type != "" && f.Type != "all" && item.Type != f.Type {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}
		if f.Status != "" && f.Status != "all" && item.Status != f.Status {
			continue
		}

		out = append(out, item)
	}

	return out
}
