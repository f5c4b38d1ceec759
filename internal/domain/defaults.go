package domain

import (
	"encoding/json"
	"fmt"
)

// DefaultCategories is the built-in category set copied into every new
// instance and backfilled into legacy records that predate the catalog.
func DefaultCategories() []Category {
	return []Category{
		{ID: "basic", Name: "Basic Services"},
		{ID: "premium", Name: "Premium Services"},
		{ID: "special", Name: "Special Treatments"},
	}
}

// DefaultServices is the built-in service catalog paired with
// DefaultCategories.
func DefaultServices() []Service {
	return []Service{
		{
			ID:          1,
			Name:        "Classic Manicure",
			Icon:        DefaultServiceIcon,
			Description: "Traditional nail care service including shaping, cuticle care, and polish",
			Price:       "$30",
			Duration:    "45 min",
			Category:    "basic",
			IsPopular:   true,
			Features: []string{
				"Nail shaping",
				"Cuticle care",
				"Hand massage",
				"Polish application",
				"Hot towel treatment",
				"Moisturizing treatment",
			},
		},
		{
			ID:          2,
			Name:        "Luxury Pedicure",
			Icon:        "FaSpa",
			Description: "Comprehensive foot care with extended massage and premium products",
			Price:       "$50",
			Duration:    "60 min",
			Category:    "premium",
			IsPopular:   true,
			Features: []string{
				"Foot soak",
				"Callus removal",
				"Extended massage",
				"Premium polish",
			},
		},
		{
			ID:          3,
			Name:        "Gel Extensions",
			Icon:        "FaPaintBrush",
			Description: "Full set of gel nail extensions with your choice of design",
			Price:       "$75",
			Duration:    "90 min",
			Category:    "special",
			IsPopular:   true,
			Features: []string{
				"Custom length",
				"Nail art options",
				"Long-lasting wear",
				"Damage-free application",
			},
		},
	}
}

// NewInstance creates the default record for a previously unknown tenant:
// one admin with the bootstrap password, empty ledgers and the built-in
// catalog.
func NewInstance(username string) *Instance {
	return &Instance{
		Name:         fmt.Sprintf("%s's Scheduler", username),
		PhoneNumber:  "",
		Admins:       []Admin{{Username: username, Password: DefaultAdminPassword}},
		Coupons:      []Coupon{},
		Appointments: []Appointment{},
		Availability: make(map[string]*DayAvailability),
		Categories:   DefaultCategories(),
		Services:     DefaultServices(),
	}
}

// DefaultDocument returns the document substituted when the backing store
// is missing or corrupt: one demo instance with a seeded coupon and
// availability calendar.
func DefaultDocument() *Document {
	return &Document{
		Users: json.RawMessage("[]"),
		Instances: map[string]*Instance{
			"default": {
				Name: "Nail Scheduler Default",
				Admins: []Admin{
					{Username: "admin", Password: DefaultAdminPassword},
				},
				Coupons: []Coupon{
					{Code: "SAVE10", Discount: 10, UsesLeft: 10, ExpiresAt: "2025-12-31"},
				},
				Appointments: []Appointment{},
				Availability: map[string]*DayAvailability{
					"2025-10-20": {IsAvailable: true, Slots: map[string]bool{"10:00": true, "11:00": true, "14:00": true}},
					"2025-10-21": {IsAvailable: true, Slots: map[string]bool{"10:00": true, "11:00": true, "14:00": true, "15:00": true}},
					"2025-10-22": {IsAvailable: true, Slots: map[string]bool{"09:00": true, "10:00": true}},
				},
				Categories: DefaultCategories(),
				Services:   DefaultServices(),
			},
		},
	}
}
