package models

type SubmissionType string

const (
	SubmissionContact    SubmissionType = "contact"
	SubmissionNewsletter SubmissionType = "newsletter"
)

// FormSubmission records a contact inquiry or newsletter signup for
// the back-office dashboard. Read is carried for the admin list view
// but no operation flips it yet.
type FormSubmission struct {
	ID   string            `json:"id"`
	Type SubmissionType    `json:"type"`
	Data map[string]string `json:"data"`
	Date string            `json:"date"`
	Read bool              `json:"read"`
}
