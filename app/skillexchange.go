package app

import (
	"context"
	"fmt"
	"strings"

	"campus-connect-client/api"
	"campus-connect-client/model"
	"campus-connect-client/query"
)

func teacherListKey(f api.ListFilters) string {
	return fmt.Sprintf("peerTeachers:%s|%s|%s|%s", f.Skill, f.Type, f.Status, f.Search)
}

func (a *App) PeerTeachers(ctx context.Context, filters api.ListFilters) ([]model.PeerTeacher, error) {
	return query.Fetch(ctx, a.Cache, teacherListKey(filters), func(ctx context.Context) ([]model.PeerTeacher, error) {
		return a.Client.SkillExchange.ListTeachers(ctx, filters)
	})
}

func (a *App) PeerTeacher(ctx context.Context, id string) (*model.PeerTeacher, error) {
	return query.Fetch(ctx, a.Cache, "peerTeacher:"+id, func(ctx context.Context) (*model.PeerTeacher, error) {
		return a.Client.SkillExchange.GetTeacher(ctx, id)
	})
}

func (a *App) CreatePeerTeacher(ctx context.Context, req model.CreatePeerTeacherRequest) (*model.PeerTeacher, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"peerTeacher", "skillsAvailable"},
		"Teacher profile created successfully!", "Failed to create teacher profile",
		func(ctx context.Context) (*model.PeerTeacher, error) {
			return a.Client.SkillExchange.CreateTeacher(ctx, req)
		})
}

func (a *App) UpdatePeerTeacher(ctx context.Context, id string, req model.UpdatePeerTeacherRequest) (*model.PeerTeacher, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"peerTeacher", "skillsAvailable"},
		"Teacher profile updated successfully!", "Failed to update teacher profile",
		func(ctx context.Context) (*model.PeerTeacher, error) {
			return a.Client.SkillExchange.UpdateTeacher(ctx, id, req)
		})
}

func (a *App) DeletePeerTeacher(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"peerTeacher", "skillsAvailable"},
		"Teacher profile deleted successfully!", "Failed to delete teacher profile",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.SkillExchange.DeleteTeacher(ctx, id)
		})
	return err
}

func (a *App) AvailableSkills(ctx context.Context) ([]string, error) {
	return query.Fetch(ctx, a.Cache, "skillsAvailable", a.Client.SkillExchange.ListSkills)
}

func (a *App) ContactRequests(ctx context.Context, filters api.ListFilters) ([]model.ContactRequest, error) {
	key := fmt.Sprintf("contactRequests:%s|%s", filters.Status, filters.Search)
	return query.Fetch(ctx, a.Cache, key, func(ctx context.Context) ([]model.ContactRequest, error) {
		return a.Client.SkillExchange.ListContactRequests(ctx, filters)
	})
}

func (a *App) SendContactRequest(ctx context.Context, req model.CreateContactRequest) (*model.ContactRequest, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"contactRequests"},
		"Contact request sent successfully!", "Failed to send contact request",
		func(ctx context.Context) (*model.ContactRequest, error) {
			return a.Client.SkillExchange.CreateContactRequest(ctx, req)
		})
}

func (a *App) AnswerContactRequest(ctx context.Context, id string, status string) (*model.ContactRequest, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"contactRequests"},
		"Contact request updated!", "Failed to update contact request",
		func(ctx context.Context) (*model.ContactRequest, error) {
			return a.Client.SkillExchange.UpdateContactRequest(ctx, id, model.UpdateContactRequest{Status: status})
		})
}

func (a *App) SkillSessions(ctx context.Context, filters api.ListFilters) ([]model.SkillSession, error) {
	key := fmt.Sprintf("skillSessions:%s", filters.Status)
	return query.Fetch(ctx, a.Cache, key, func(ctx context.Context) ([]model.SkillSession, error) {
		return a.Client.SkillExchange.ListSessions(ctx, filters)
	})
}

func (a *App) UpdateSkillSession(ctx context.Context, id string, req model.UpdateSkillSessionRequest) (*model.SkillSession, error) {
	return query.Mutate(ctx, a.Cache, a.Notifier, []string{"skillSessions"},
		"Session updated successfully!", "Failed to update session",
		func(ctx context.Context) (*model.SkillSession, error) {
			return a.Client.SkillExchange.UpdateSession(ctx, id, req)
		})
}

func (a *App) Notifications(ctx context.Context) ([]model.Notification, error) {
	return query.Fetch(ctx, a.Cache, "notifications", func(ctx context.Context) ([]model.Notification, error) {
		return a.Client.SkillExchange.ListNotifications(ctx, api.ListFilters{})
	})
}

func (a *App) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"notifications"},
		"", "Failed to mark notification as read",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.SkillExchange.MarkNotificationRead(ctx, id)
		})
	return err
}

func (a *App) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := query.Mutate(ctx, a.Cache, a.Notifier, []string{"notifications"},
		"All notifications marked as read", "Failed to mark all notifications as read",
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, a.Client.SkillExchange.MarkAllNotificationsRead(ctx)
		})
	return err
}

// DeleteNotification is best-effort: a failure is logged, never surfaced.
func (a *App) DeleteNotification(ctx context.Context, id string) {
	if err := a.Client.SkillExchange.DeleteNotification(ctx, id); err != nil {
		a.logger.Warn("notification delete failed", "notification_id", id, "error", err.Error())
		return
	}

	a.Cache.Invalidate("notifications")
}

func (a *App) SkillExchangeMetrics(ctx context.Context) (*model.Metrics, error) {
	return query.Fetch(ctx, a.Cache, "skillMetrics", a.Client.SkillExchange.Metrics)
}

type TeacherFilter struct {
	Search string
	Skill  string
	Type   string
}

// FilterTeachers applies the marketplace page's client-side narrowing.
func FilterTeachers(items []model.PeerTeacher, f TeacherFilter) []model.PeerTeacher {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.PeerTeacher, 0, len(items))
	for _, item := range items {
		if search != "" && !teacherMatches(item, search) {
			continue
		}
		if f.Type != "" && f.Type != "all" && item.Type != f.Type {
			continue
		}
		if f.Skill != "" && f.Skill != "all" && !hasSkill(item.Skills, f.Skill) {
			continue
		}

		out = append(out, item)
	}

	return out
}

func teacherMatches(t model.PeerTeacher, search string) bool {
	if strings.Contains(strings.ToLower(t.Name), search) ||
		strings.Contains(strings.ToLower(t.Bio), search) {
		return true
	}

	for _, skill := range t.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}

	return false
}

func hasSkill(skills []string, want string) bool {
	for _, skill := range skills {
		if strings.EqualFold(skill, want) {
			return true
		}
	}

	return false
}
