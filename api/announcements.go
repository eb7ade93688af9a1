package api

import (
	"context"

	"campus-connect-client/model"
)

type AnnouncementsAPI struct {
	c *Client
}

func (a *AnnouncementsAPI) List(ctx context.Context) ([]model.Announcement, error) {
	var out model.AnnouncementList
	if err := a.c.getJSON(ctx, "/announcements", &out); err != nil {
		return nil, err
	}

	return out.Announcements, nil
}

func (a *AnnouncementsAPI) Create(ctx context.Context, req model.CreateAnnouncementRequest) (*model.Announcement, error) {
	var out model.Announcement
	if err := a.c.sendJSON(ctx, "POST", "/announcements", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *AnnouncementsAPI) Update(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (*model.Announcement, error) {
	var out model.Announcement
	if err := a.c.sendJSON(ctx, "PUT", "/announcements/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *AnnouncementsAPI) Delete(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/announcements/"+id)
}

// MarkRead records server-side that the current user opened the announcement.
func (a *AnnouncementsAPI) MarkRead(ctx context.Context, id string) error {
	return a.c.do(ctx, "POST", "/announcements/"+id+"/read", "", nil, nil)
}
