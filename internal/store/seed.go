package store

import (
	"time"

	"github.com/wisdomconnect/wisdom-connect/pkg/models"
)

// database is the entire persisted structure. It is serialized as a single
// JSON document and rewritten wholesale on every mutation; there is no
// incremental format and no schema versioning.
type database struct {
	Experts        []models.Expert        `json:"experts"`
	Applications   []models.Application   `json:"expertApplications"`
	ClientFeedback []models.Feedback      `json:"clientFeedback"`
	ExpertFeedback []models.Feedback      `json:"expertFeedback"`
	Connections    []models.Connection    `json:"connections"`
	Waitlist       []models.WaitlistEntry `json:"waitlist"`
}

// seedDatabase returns the launch directory used when no snapshot exists.
func seedDatabase() *database {
	now := time.Now().UTC()
	return &database{
		Experts: []models.Expert{
			{
				ID:              1,
				Name:            "Dr. Sarah Chen",
				Title:           "Former VP of AI at Google",
				Industry:        "Technology & AI",
				Avatar:          "👩‍💻",
				Experience:      "Former VP at Google & Microsoft",
				ExperienceLevel: "veteran",
				Rating:          4.9,
				Reviews:         127,
				Price:           3000,
				Projects:        89,
				Skills:          []string{"AI Strategy", "Digital Transformation", "Product Management"},
				Description:     "Leading AI strategist with 25+ years in tech. Helped 50+ companies implement successful AI initiatives.",
				LinkedIn:        "https://linkedin.com/in/sarah-chen-ai",
				Availability:    "part-time",
				Bio:             "Led AI initiatives at Google and Microsoft for over 25 years. Specialized in enterprise AI transformation and strategic implementation.",
				IsActive:        true,
				JoinedDate:      now,
			},
			{
				ID:              2,
				Name:            "Robert Williams",
				Title:           "Former Director of Operations at GE",
				Industry:        "Manufacturing",
				Avatar:          "👨‍🏭",
				Experience:      "Ex-Director at General Electric",
				ExperienceLevel: "executive",
				Rating:          4.8,
				Reviews:         203,
				Price:           2200,
				Projects:        156,
				Skills:          []string{"Lean Manufacturing", "Operations Excellence", "Supply Chain"},
				Description:     "Manufacturing excellence expert with 30+ years at Fortune 500 companies.",
				LinkedIn:        "https://linkedin.com/in/robert-williams-mfg",
				Availability:    "full-time",
				Bio:             "30+ years optimizing manufacturing processes at Fortune 500 companies. Expert in lean methodologies and supply chain optimization.",
				IsActive:        true,
				JoinedDate:      now,
			},
			{
				ID:              3,
				Name:            "Dr. James Mitchell",
				Title:           "Former Chief Medical Officer at Pfizer",
				Industry:        "Healthcare & Pharma",
				Avatar:          "👨‍⚕️",
				Experience:      "40 years at Pfizer & J&J",
				ExperienceLevel: "veteran",
				Rating:          4.9,
				Reviews:         89,
				Price:           2800,
				Projects:        67,
				Skills:          []string{"Drug Development", "Regulatory Affairs", "Clinical Trials"},
				Description:     "Pharmaceutical industry veteran. Led development of 15+ successful drugs.",
				LinkedIn:        "https://linkedin.com/in/james-mitchell-pharma",
				Availability:    "advisory",
				Bio:             "40 years in pharmaceutical development. Led clinical trials for 15+ FDA-approved medications at Pfizer and J&J.",
				IsActive:        true,
				JoinedDate:      now,
			},
			{
				ID:              4,
				Name:            "Maria Rodriguez",
				Title:           "Former CFO at Goldman Sachs",
				Industry:        "Finance & Banking",
				Avatar:          "👩‍💼",
				Experience:      "Former CFO at Goldman Sachs",
				ExperienceLevel: "executive",
				Rating:          4.9,
				Reviews:         145,
				Price:           3500,
				Projects:        78,
				Skills:          []string{"Investment Strategy", "Risk Management", "M&A"},
				Description:     "Wall Street veteran with expertise in complex financial instruments.",
				LinkedIn:        "https://linkedin.com/in/maria-rodriguez-gs",
				Availability:    "project-based",
				Bio:             "Former CFO at Goldman Sachs with 20+ years in investment banking. Specialized in M&A transactions and risk management.",
				IsActive:        true,
				JoinedDate:      now,
			},
		},
		Applications:   []models.Application{},
		ClientFeedback: []models.Feedback{},
		ExpertFeedback: []models.Feedback{},
		Connections:    []models.Connection{},
		Waitlist:       []models.WaitlistEntry{},
	}
}
