package app

import (
	"context"
	"strings"

	"campus-connect-client/model"
	"campus-connect-client/query"
)

// Channels is the fixed announcement feed catalog.
func Channels() []model.Channel {
	return []model.Channel{
		{ID: "general-announcements", Label: "General Announcements", Icon: "📢", Category: "Information"},
		{ID: "academic-updates", Label: "Academic Updates", Icon: "🎓", Category: "Information"},
		{ID: "campus-events", Label: "Campus Events", Icon: "🎉", Category: "Information"},
		{ID: "exam-notifications", Label: "Exam Notifications", Icon: "📝", Category: "Information"},
		{ID: "sports-activities", Label: "Sports Activities", Icon: "⚽", Category: "Activities"},
		{ID: "library-updates", Label: "Library Updates", Icon: "📚", Category: "Information"},
		{ID: "job-placement", Label: "Job Placement", Icon: "💼", Category: "Career"},
		{ID: "hostel-notices", Label: "Hostel Notices", Icon: "🏠", Category: "Campus Life"},
		{ID: "tech-updates", Label: "Tech Updates", Icon: "💻", Category: "Activities"},
	}
}

// Announcements fetches the feed through the cache and reconciles the local
// read set against the server's flags.
func (a *App) Announcements(ctx context.Context) ([]model.Announcement, error) {
	items, err := query.Fetch(ctx, a.Cache, "announcements", a.Client.Announcements.List)
	if err != nil {
		return nil, err
	}

	a.Reads.Reconcile(items)
	return items, nil
}

func (a *App) CreateAnnouncement(ctx context.Context, req model.CreateAnnouncementRequest) (*model.Announcement, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"announcements"},
		"Announcement created successfully!", "Failed to create announcement",
		func(ctx context.Context) (*model.Announcement, error) {
			return a.Client.Announcements.Create(ctx, req)
		})
}

func (a *App) UpdateAnnouncement(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (*model.Announcement, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"announcements"},
		"Announcement updated successfully!", "Failed to update announcement",
		func(ctx context.Context) (*model.Announcement, error) {
			return a.Client.Announcements.Update(ctx, id, req)
		})
}

func (a *App) DeleteAnnouncement(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"announcements"},
		"Announcement deleted successfully!", "Failed to delete announcement",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.Announcements.Delete(ctx, id)
		})
	return err
}

// MarkAnnouncementRead is optimistic: the local set updates immediately and
// the backend call, when one happens, is detached.
func (a *App) MarkAnnouncementRead(id string) {
	a.Reads.MarkRead(id)
}

// ChannelUnreadCounts returns unread totals keyed by channel id.
func (a *App) ChannelUnreadCounts(items []model.Announcement) map[string]int {
	return a.Reads.UnreadCounts(items)
}

type AnnouncementFilter struct {
	Search   string
	Category string
	Channel  string
}

// FilterAnnouncements applies the page's search box and category/channel
// selectors. Empty or "all" selectors match everything.
func FilterAnnouncements(items []model.Announcement, f AnnouncementFilter) []model.Announcement {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Announcement, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		if f.Category != "" && f.Category != "all" && item.Category != f.Category {
			continue
		}
		if f.Channel != "" && f.Channel != "all" && item.Channel != f.Channel {
			continue
		}

		out = append(out, item)
	}

	return out
}
