package model

// Announcement is a single channel post. IsRead is a pointer because older
// backend deployments omit the flag entirely; absence means the server does
// not track read status for this item and the local read set decides.
type Announcement struct {
	ID            string `json:"_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Channel       string `json:"channel"`
	CreatedAt     string `json:"createdAt"`
	CreatedBy     string `json:"createdBy"`
	CreatedByName string `json:"createdByName"`
	IsPinned      bool   `json:"isPinned,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Views         int    `json:"views,omitempty"`
	IsRead        *bool  `json:"isRead,omitempty"`
}

type AnnouncementList struct {
	Announcements []Announcement `json:"announcements"`
}

type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Channel     string `json:"channel" validate:"required"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	IsPinned    bool   `json:"isPinned,omitempty"`
}

type UpdateAnnouncementRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Channel     string `json:"channel,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	IsPinned    *bool  `json:"isPinned,omitempty"`
}

// Channel is a fixed announcement feed grouping used by the client.
type Channel struct {
	ID       string
	Label    string
	Icon     string
	Category string
}
