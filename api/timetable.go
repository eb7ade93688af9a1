package api

import (
	"context"

	"campus-connect-client/model"
)

type TimetableAPI struct {
	c *Client
}

func (a *TimetableAPI) List(ctx context.Context) ([]model.TimetableEntry, error) {
	var out []model.TimetableEntry
	if err := a.c.getJSON(ctx, "/timetable", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *TimetableAPI) Create(ctx context.Context, req model.CreateTimetableRequest) (*model.TimetableEntry, error) {
	var out model.TimetableEntry
	if err := a.c.sendJSON(ctx, "POST", "/timetable", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *TimetableAPI) Update(ctx context.Context, id string, req model.UpdateTimetableRequest) (*model.TimetableEntry, error) {
	var out model.TimetableEntry
	if err := a.c.sendJSON(ctx, "PUT", "/timetable/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *TimetableAPI) Delete(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/timetable/"+id)
}
