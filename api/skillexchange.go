package api

import (
	"context"
	"net/url"

	"campus-connect-client/model"
)

// SkillExchangeAPI covers the peer-teaching marketplace: teacher profiles,
// the skills catalog, contact requests, sessions, notifications, and the
// dashboard metrics summary.
type SkillExchangeAPI struct {
	c *Client
}

// ListFilters narrows server-side listings. Zero values are omitted.
type ListFilters struct {
	Skill  string
	Type   string
	Status string
	Search string
}

func (f ListFilters) encode() string {
	values := url.Values{}
	if f.Skill != "" {
		values.Set("skill", f.Skill)
	}
	if f.Type != "" {
		values.Set("type", f.Type)
	}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	if f.Search != "" {
		values.Set("search", f.Search)
	}

	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (a *SkillExchangeAPI) ListTeachers(ctx context.Context, filters ListFilters) ([]model.PeerTeacher, error) {
	var out []model.PeerTeacher
	if err := a.c.getJSON(ctx, "/skill-exchange/teachers"+filters.encode(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SkillExchangeAPI) GetTeacher(ctx context.Context, id string) (*model.PeerTeacher, error) {
	var out model.PeerTeacher
	if err := a.c.getJSON(ctx, "/skill-exchange/teachers/"+id, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) CreateTeacher(ctx context.Context, req model.CreatePeerTeacherRequest) (*model.PeerTeacher, error) {
	var out model.PeerTeacher
	if err := a.c.sendJSON(ctx, "POST", "/skill-exchange/teachers", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) UpdateTeacher(ctx context.Context, id string, req model.UpdatePeerTeacherRequest) (*model.PeerTeacher, error) {
	var out model.PeerTeacher
	if err := a.c.sendJSON(ctx, "PUT", "/skill-exchange/teachers/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) DeleteTeacher(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/skill-exchange/teachers/"+id)
}

func (a *SkillExchangeAPI) ListSkills(ctx context.Context) ([]string, error) {
	var out []string
	if err := a.c.getJSON(ctx, "/skill-exchange/skills", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SkillExchangeAPI) ListContactRequests(ctx context.Context, filters ListFilters) ([]model.ContactRequest, error) {
	var out []model.ContactRequest
	if err := a.c.getJSON(ctx, "/skill-exchange/contact-requests"+filters.encode(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SkillExchangeAPI) GetContactRequest(ctx context.Context, id string) (*model.ContactRequest, error) {
	var out model.ContactRequest
	if err := a.c.getJSON(ctx, "/skill-exchange/contact-requests/"+id, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) CreateContactRequest(ctx context.Context, req model.CreateContactRequest) (*model.ContactRequest, error) {
	var out model.ContactRequest
	if err := a.c.sendJSON(ctx, "POST", "/skill-exchange/contact-requests", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) UpdateContactRequest(ctx context.Context, id string, req model.UpdateContactRequest) (*model.ContactRequest, error) {
	var out model.ContactRequest
	if err := a.c.sendJSON(ctx, "PUT", "/skill-exchange/contact-requests/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) ListSessions(ctx context.Context, filters ListFilters) ([]model.SkillSession, error) {
	var out []model.SkillSession
	if err := a.c.getJSON(ctx, "/skill-exchange/sessions"+filters.encode(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SkillExchangeAPI) GetSession(ctx context.Context, id string) (*model.SkillSession, error) {
	var out model.SkillSession
	if err := a.c.getJSON(ctx, "/skill-exchange/sessions/"+id, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) UpdateSession(ctx context.Context, id string, req model.UpdateSkillSessionRequest) (*model.SkillSession, error) {
	var out model.SkillSession
	if err := a.c.sendJSON(ctx, "PUT", "/skill-exchange/sessions/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *SkillExchangeAPI) ListNotifications(ctx context.Context, filters ListFilters) ([]model.Notification, error) {
	var out []model.Notification
	if err := a.c.getJSON(ctx, "/skill-exchange/notifications"+filters.encode(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *SkillExchangeAPI) MarkNotificationRead(ctx context.Context, id string) error {
	return a.c.do(ctx, "PUT", "/skill-exchange/notifications/"+id+"/read", "", nil, nil)
}

func (a *SkillExchangeAPI) MarkAllNotificationsRead(ctx context.Context) error {
	return a.c.do(ctx, "PUT", "/skill-exchange/notifications/read-all", "", nil, nil)
}

func (a *SkillExchangeAPI) DeleteNotification(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/skill-exchange/notifications/"+id)
}

func (a *SkillExchangeAPI) Metrics(ctx context.Context) (*model.Metrics, error) {
	var out model.Metrics
	if err := a.c.getJSON(ctx, "/skill-exchange/metrics", &out); err != nil {
		return nil, err
	}

	return &out, nil
}
