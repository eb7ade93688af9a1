package api

import (
	"context"

	"campus-connect-client/model"
)

type LostFoundAPI struct {
	c *Client
}

func (a *LostFoundAPI) List(ctx context.Context) ([]model.LostFoundItem, error) {
	var out []model.LostFoundItem
	if err := a.c.getJSON(ctx, "/lost-found", &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *LostFoundAPI) Create(ctx context.Context, req model.CreateLostFoundRequest) (*model.LostFoundItem, error) {
	var out model.LostFoundItem
	if err := a.c.sendJSON(ctx, "POST", "/lost-found", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *LostFoundAPI) Update(ctx context.Context, id string, req model.UpdateLostFoundRequest) (*model.LostFoundItem, error) {
	var out model.LostFoundItem
	if err := a.c.sendJSON(ctx, "PUT", "/lost-found/"+id, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *LostFoundAPI) Delete(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/lost-found/"+id)
}
