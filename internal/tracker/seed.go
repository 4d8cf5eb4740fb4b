package tracker

import (
	"github.com/shopspring/decimal"

	"github.com/shrimpsizemoose/stipendium/internal/models"
)

type Seed struct {
	Scholarships []models.Scholarship
	Applications []models.Application
}

// DemoSeed is the data a fresh tracker session starts with.
func DemoSeed() Seed {
	return Seed{
		Scholarships: []models.Scholarship{
			{
				ID:          1,
				Name:        "Merit Scholarship",
				Description: "For high-achieving students",
				Deadline:    "2023-12-31",
				Amount:      decimal.NewFromInt(5000),
			},
			{
				ID:          2,
				Name:        "Need-Based Aid",
				Description: "Financial aid for low-income students",
				Deadline:    "2023-11-30",
				Amount:      decimal.NewFromInt(3000),
			},
		},
		Applications: []models.Application{
			{ID: 1, StudentName: "John Doe", ScholarshipID: 1, Status: models.StatusApplied},
			{ID: 2, StudentName: "Jane Smith", ScholarshipID: 2, Status: models.StatusApproved},
		},
	}
}

// Tracker bundles the two stores a view works against.
type Tracker struct {
	Scholarships *ScholarshipStore
	Applications *ApplicationStore
}

func New(seed Seed) *Tracker {
	return &Tracker{
		Scholarships: NewScholarshipStore(seed.Scholarships),
		Applications: NewApplicationStore(seed.Applications),
	}
}
