package models

import "time"

// Domain records for the Wisdom Connect marketplace. These are both the
// in-memory representation and the wire/snapshot format, so json tags
// follow the public API field names.

// ExpertFilter is the directory search criteria. Zero-value fields impose
// no constraint; supplied fields combine with logical AND.
type ExpertFilter struct {
	Industry   string
	Experience string
	Budget     string
	Keywords   string
}

// Expert is one directory profile. IsActive gates visibility in every
// query; inactive records are retained for history but never returned.
type Expert struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Title           string     `json:"title,omitempty"`
	Industry        string     `json:"industry"`
	Avatar          string     `json:"avatar,omitempty"`
	Experience      string     `json:"experience"`
	ExperienceLevel string     `json:"experienceLevel"`
	Rating          float64    `json:"rating"`
	Reviews         int        `json:"reviews"`
	Price           int        `json:"price"`
	Projects        int        `json:"projects"`
	Skills          []string   `json:"skills"`
	Description     string     `json:"description"`
	LinkedIn        string     `json:"linkedin,omitempty"`
	Availability    string     `json:"availability,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	IsActive        bool       `json:"isActive"`
	JoinedDate      time.Time  `json:"joinedDate"`
	ApprovedDate    *time.Time `json:"approvedDate,omitempty"`
}

// Application statuses. The only transition is pending -> approved.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Application is a prospective expert's submission. ApplicationID is the
// human-facing code (WC_ prefix); ExpertID is set on approval and points
// at the directory record the application became.
type Application struct {
	ID            int64      `json:"id"`
	ApplicationID string     `json:"applicationId"`
	Name          string     `json:"name"`
	Title         string     `json:"title"`
	Experience    string     `json:"experience"`
	Industry      string     `json:"industry"`
	Rate          int        `json:"rate"`
	Skills        []string   `json:"skills,omitempty"`
	Bio           string     `json:"bio,omitempty"`
	LinkedIn      string     `json:"linkedin,omitempty"`
	Availability  string     `json:"availability,omitempty"`
	Status        string     `json:"status"`
	UserAgent     string     `json:"userAgent,omitempty"`
	IP            string     `json:"ip,omitempty"`
	SubmittedDate time.Time  `json:"submittedDate"`
	ApprovedDate  *time.Time `json:"approvedDate,omitempty"`
	ExpertID      *int64     `json:"expertId,omitempty"`
}

// Feedback covers both the client and expert variants; they are
// structurally identical and live in separate collections.
type Feedback struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback,omitempty"`
	Concerns  string    `json:"concerns,omitempty"`
	Features  string    `json:"features,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	IP        string    `json:"ip,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Connection is a visitor's request to be introduced to an expert.
type Connection struct {
	ID           int64     `json:"id"`
	ConnectionID string    `json:"connectionId"`
	ExpertID     int64     `json:"expertId"`
	Status       string    `json:"status"`
	UserAgent    string    `json:"userAgent,omitempty"`
	IP           string    `json:"ip,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// WaitlistEntry is an early-access signup.
type WaitlistEntry struct {
	ID              int64     `json:"id"`
	WaitlistID      string    `json:"waitlistId"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Challenge       string    `json:"challenge,omitempty"`
	PreferredExpert string    `json:"preferredExpert,omitempty"`
	Source          string    `json:"source"`
	UserAgent       string    `json:"userAgent,omitempty"`
	IP              string    `json:"ip,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// PlatformStats is the aggregate payload served at /api/stats.
type PlatformStats struct {
	TotalExperts      int            `json:"totalExperts"`
	TotalApplications int            `json:"totalApplications"`
	TotalConnections  int            `json:"totalConnections"`
	TotalFeedback     int            `json:"totalFeedback"`
	AverageRating     string         `json:"averageRating"`
	Industries        []string       `json:"industries"`
	TopSkills         map[string]int `json:"topSkills"`
}

// WaitlistStats is the social-proof payload served at /api/waitlist/stats.
// TotalSignups includes a configured base offset on top of the real count.
type WaitlistStats struct {
	TotalSignups   int      `json:"totalSignups"`
	TodaySignups   int      `json:"todaySignups"`
	TopCountries   []string `json:"topCountries"`
	RecentExperts  []string `json:"recentExperts"`
	LaunchProgress int      `json:"launchProgress"`
}
