package model

// Peer teacher kinds and contact request states.
const (
	TeacherPeer   = "peer"
	TeacherSenior = "senior"

	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

type PeerTeacher struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	Type          string   `json:"type"`
	Availability  []string `json:"availability"`
	LinkedinURL   string   `json:"linkedinUrl,omitempty"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone,omitempty"`
	Bio           string   `json:"bio"`
	Rating        float64  `json:"rating"`
	TotalSessions int      `json:"totalSessions"`
	CreatedAt     string   `json:"createdAt"`
	AddedBy       string   `json:"addedBy"`
}

type CreatePeerTeacherRequest struct {
	Name         string   `json:"name" validate:"required"`
	Skills       []string `json:"skills" validate:"required,min=1"`
	Type         string   `json:"type" validate:"required,oneof=peer senior"`
	Availability []string `json:"availability" validate:"required,min=1"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone,omitempty"`
	Bio          string   `json:"bio" validate:"required"`
}

type UpdatePeerTeacherRequest struct {
	Name         string   `json:"name,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	Availability []string `json:"availability,omitempty"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	Phone        string   `json:"phone,omitempty"`
	Bio          string   `json:"bio,omitempty"`
}

type ContactRequest struct {
	ID             string `json:"id"`
	TeacherID      string `json:"teacherId"`
	TeacherName    string `json:"teacherName"`
	RequesterName  string `json:"requesterName"`
	RequesterEmail string `json:"requesterEmail"`
	Skill          string `json:"skill"`
	Message        string `json:"message"`
	PreferredTime  string `json:"preferredTime"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
}

type CreateContactRequest struct {
	TeacherID     string `json:"teacherId" validate:"required"`
	Skill         string `json:"skill" validate:"required"`
	Message       string `json:"message" validate:"required"`
	PreferredTime string `json:"preferredTime,omitempty"`
}

type UpdateContactRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted declined"`
}

type SkillSession struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	LearnerName string `json:"learnerName"`
	Skill       string `json:"skill"`
	ScheduledAt string `json:"scheduledAt,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type UpdateSkillSessionRequest struct {
	ScheduledAt string `json:"scheduledAt,omitempty"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=scheduled completed cancelled"`
}

type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// Metrics is the skill-exchange dashboard summary.
type Metrics struct {
	Teachers        int `json:"teachers"`
	ActiveSessions  int `json:"activeSessions"`
	PendingRequests int `json:"pendingRequests"`
	SkillsOffered   int `json:"skillsOffered"`
}
