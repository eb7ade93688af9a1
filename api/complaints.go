package api

import (
	"context"
	"fmt"

	"campus-connect-client/model"
)

type ComplaintsAPI struct {
	c *Client
}

func (a *ComplaintsAPI) List(ctx context.Context) ([]model.Complaint, error) {
	var out model.ComplaintList
	if err := a.c.getJSON(ctx, "/complaints", &out); err != nil {
		return nil, err
	}

	return out.Complaints, nil
}

// Create submits a complaint as multipart form data so an evidence file can
// travel with it.
func (a *ComplaintsAPI) Create(ctx context.Context, req model.CreateComplaintRequest) (*model.Complaint, error) {
	if err := a.c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
		"category":    req.Category,
		"priority":    req.Priority,
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}

	files := map[string]*model.Upload{}
	if req.Attachment != nil {
		files["attachment"] = req.Attachment
	}

	var out model.Complaint
	if err := a.c.sendMultipart(ctx, "POST", "/complaints", fields, files, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update goes out as JSON unless the change includes a new attachment, in
// which case the whole payload switches to multipart.
func (a *ComplaintsAPI) Update(ctx context.Context, id string, req model.UpdateComplaintRequest) (*model.Complaint, error) {
	var out model.Complaint

	if req.Attachment == nil {
		if err := a.c.sendJSON(ctx, "PUT", "/complaints/"+id, req, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	if err := a.c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	fields := map[string]string{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}
	if req.Priority != "" {
		fields["priority"] = req.Priority
	}
	if req.Comment != "" {
		fields["comment"] = req.Comment
	}

	files := map[string]*model.Upload{"attachment": req.Attachment}
	if err := a.c.sendMultipart(ctx, "PUT", "/complaints/"+id, fields, files, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (a *ComplaintsAPI) Delete(ctx context.Context, id string) error {
	return a.c.deleteJSON(ctx, "/complaints/"+id)
}
