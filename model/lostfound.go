package model

// Lost-and-found item kinds and lifecycle states.
const (
	LostFoundLost  = "lost"
	LostFoundFound = "found"

	LostFoundActive   = "active"
	LostFoundResolved = "resolved"
)

type LostFoundItem struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	Date         string `json:"date"`
	ContactInfo  string `json:"contactInfo"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Status       string `json:"status"`
	ReportedBy   string `json:"reportedBy"`
	ReportedName string `json:"reportedByName,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type CreateLostFoundRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=lost found"`
	Location    string `json:"location" validate:"required"`
	Date        string `json:"date,omitempty"`
	ContactInfo string `json:"contactInfo" validate:"required"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type UpdateLostFoundRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=active resolved"`
}
