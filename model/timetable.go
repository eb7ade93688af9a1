package model

// Timetable entry kinds. A class carries a subject; a task carries a title
// and a completion flag.
const (
	TimetableClass = "class"
	TimetableTask  = "task"
)

type TimetableEntry struct {
	ID          string `json:"_id"`
	Type        string `json:"type"`
	Subject     string `json:"subject,omitempty"`
	Title       string `json:"title,omitempty"`
	Day         string `json:"day"`
	Time        string `json:"time"`
	Location    string `json:"location,omitempty"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
}

type CreateTimetableRequest struct {
	Type        string `json:"type" validate:"required,oneof=class task"`
	Subject     string `json:"subject,omitempty"`
	Title       string `json:"title,omitempty"`
	Day         string `json:"day" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location,omitempty"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
}

type UpdateTimetableRequest struct {
	Subject     string `json:"subject,omitempty"`
	Title       string `json:"title,omitempty"`
	Day         string `json:"day,omitempty"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	IsCompleted *bool  `json:"isCompleted,omitempty"`
}
