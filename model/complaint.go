package model

// Complaint lifecycle states and priorities.
const (
	ComplaintPending    = "pending"
	ComplaintInProgress = "in-progress"
	ComplaintResolved   = "resolved"
)

type UserRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type ComplaintAttachment struct {
	Filename   string `json:"filename"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt"`
}

type ComplaintComment struct {
	ID         string  `json:"_id"`
	Author     UserRef `json:"author"`
	AuthorName string  `json:"authorName"`
	Message    string  `json:"message"`
	CreatedAt  string  `json:"createdAt"`
}

type ComplaintContact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type Complaint struct {
	ID                  string                `json:"_id"`
	Title               string                `json:"title"`
	Description         string                `json:"description"`
	Category            string                `json:"category"`
	Status              string                `json:"status"`
	Priority            string                `json:"priority"`
	SubmittedBy         UserRef               `json:"submittedBy"`
	SubmittedByName     string                `json:"submittedByName"`
	AssignedTo          *UserRef              `json:"assignedTo,omitempty"`
	Location            string                `json:"location,omitempty"`
	ContactInfo         *ComplaintContact     `json:"contactInfo,omitempty"`
	Attachments         []ComplaintAttachment `json:"attachments,omitempty"`
	Comments            []ComplaintComment    `json:"comments,omitempty"`
	ResolvedAt          string                `json:"resolvedAt,omitempty"`
	EstimatedResolution string                `json:"estimatedResolution,omitempty"`
	CreatedAt           string                `json:"createdAt"`
}

type ComplaintList struct {
	Complaints []Complaint `json:"complaints"`
}

// CreateComplaintRequest is encoded as multipart form data so an attachment
// can travel with the submission.
type CreateComplaintRequest struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
	Priority    string `validate:"required,oneof=low medium high urgent"`
	Location    string
	Attachment  *Upload
}

// UpdateComplaintRequest is sent as JSON unless Attachment is set, in which
// case the whole update switches to multipart.
type UpdateComplaintRequest struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=pending in-progress resolved"`
	Priority    string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Comment     string  `json:"comment,omitempty"`
	Attachment  *Upload `json:"-"`
}
