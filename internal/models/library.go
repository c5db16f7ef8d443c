package models

// Internship statuses.
const (
	InternshipActive    = "Active"
	InternshipAvailable = "Available"
)

// Internship is a static read-only placement record shipped with the catalog.
type Internship struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Mentor      string   `json:"mentor"`
	Status      string   `json:"status"`
	Week        int      `json:"week,omitempty"`
	TotalWeeks  int      `json:"total_weeks,omitempty"`
	SpotsLeft   int      `json:"spots_left,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Type        string   `json:"type,omitempty"`
	Stipend     string   `json:"stipend,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ListingURL  string   `json:"listing_url,omitempty"`
}

// Certificate is a static earned-certificate record. Rendering the
// downloadable document is delegated to an external renderer; the core only
// supplies title, issue date and the learner's display name.
type Certificate struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	IssueDate string `json:"issue_date"`
}

// CertificateRender is the payload handed to the certificate renderer.
type CertificateRender struct {
	Title       string `json:"title"`
	IssueDate   string `json:"issue_date"`
	LearnerName string `json:"learner_name"`
}
