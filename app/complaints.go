package app

import (
	"context"
	"strings"

	"campus-connect-client/model"
	"campus-connect-client/query"
)

func (a *App) Complaints(ctx context.Context) ([]model.Complaint, error) {
	return query.Fetch(ctx, a.Cache, "complaints", a.Client.Complaints.List)
}

func (a *App) SubmitComplaint(ctx context.Context, req model.CreateComplaintRequest) (*model.Complaint, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"complaints"},
		"Complaint submitted successfully!", "Failed to submit complaint",
		func(ctx context.Context) (*model.Complaint, error) {
			return a.Client.Complaints.Create(ctx, req)
		})
}

func (a *App) UpdateComplaint(ctx context.Context, id string, req model.UpdateComplaintRequest) (*model.Complaint, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"complaints"},
		"Complaint updated successfully!", "Failed to update complaint",
		func(ctx context.Context) (*model.Complaint, error) {
			return a.Client.Complaints.Update(ctx, id, req)
		})
}

func (a *App) DeleteComplaint(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"complaints"},
		"Complaint deleted successfully!", "Failed to delete complaint",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.Complaints.Delete(ctx, id)
		})
	return err
}

type ComplaintFilter struct {
	Search   string
	Status   string
	Priority string
	Category string
}

func FilterComplaints(items []model.Complaint, f ComplaintFilter) []model.Complaint {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Complaint, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && item.Status != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != "all" && item.Priority != f.Priority {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}

		out = append(out, item)
	}

	return out
}

// ComplaintStatusCounts totals complaints per lifecycle state for the page
// header badges.
func ComplaintStatusCounts(items []model.Complaint) map[string]int {
	counts := map[string]int{}
	for _, item := range items {
		counts[item.Status]++
	}

	return counts
}
