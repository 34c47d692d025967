package compatibility

import "upsell/models"

// Category keys of the built-in catalog.
const (
	CategoryBedType   = "bedType"
	CategoryView      = "view"
	CategoryExactView = "exactView"
	CategoryLocation  = "location"
	CategoryFeatures  = "features"
)

// DefaultCatalog returns the built-in room customization catalog.
func DefaultCatalog() models.Catalog {
	return models.Catalog{Categories: []models.CustomizationCategory{
		{
			Key:   CategoryBedType,
			Label: "Bed Type",
			Options: []models.CustomizationOption{
				{ID: "king-bed", Label: "King Bed", Price: 25},
				{ID: "queen-bed", Label: "Queen Bed", Price: 15},
				{ID: "twin-beds", Label: "Twin Beds", Price: 10},
			},
		},
		{
			Key:   CategoryView,
			Label: "View",
			Options: []models.CustomizationOption{
				{ID: "ocean-view", Label: "Ocean View", Price: 60},
				{ID: "city-view", Label: "City View", Price: 30},
				{ID: "garden-view", Label: "Garden View", Price: 20},
			},
		},
		{
			Key:   CategoryExactView,
			Label: "Exact View",
			Options: []models.CustomizationOption{
				{ID: "exact-ocean-front", Label: "Ocean Front", Price: 90},
				{ID: "exact-skyline", Label: "Skyline", Price: 70},
				{ID: "exact-sunset", Label: "Sunset Facing", Price: 45},
			},
		},
		{
			Key:   CategoryLocation,
			Label: "Location",
			Options: []models.CustomizationOption{
				{ID: "high-floor", Label: "High Floor", Price: 35},
				{ID: "low-floor", Label: "Low Floor", Price: 0},
				{ID: "near-elevator", Label: "Near Elevator", Price: 5},
				{ID: "quiet-zone", Label: "Quiet Zone", Price: 20},
			},
		},
		{
			Key:   CategoryFeatures,
			Label: "Room Features",
			Options: []models.CustomizationOption{
				{ID: "balcony", Label: "Balcony", Price: 40},
				{ID: "accessible-room", Label: "Accessible Room", Price: 0},
				{ID: "connecting-room", Label: "Connecting Room", Price: 30},
				{ID: "pet-friendly", Label: "Pet Friendly", Price: 35},
			},
		},
	}}
}

// DefaultRules returns the built-in compatibility rules.
func DefaultRules() models.CompatibilityRules {
	return models.CompatibilityRules{
		MutuallyExclusive: []models.ExclusiveGroup{
			{
				Options: []string{"high-floor", "low-floor"},
				Reason:  "A room cannot be on a high and a low floor at once",
			},
			{
				Options: []string{"quiet-zone", "connecting-room"},
				Reason:  "Connecting rooms are not located in the quiet zone",
			},
			{
				Options: []string{"ocean-view", "city-view", "garden-view", "exact-ocean-front", "exact-skyline"},
				Reason:  "A room has a single primary view",
			},
		},
		Conflicts: []models.ConflictRule{
			{
				Option:   "garden-view",
				Disables: []string{"high-floor"},
				Reason:   "Garden views are only available on lower floors",
			},
			{
				Option:   "exact-skyline",
				Disables: []string{"low-floor"},
				Reason:   "The skyline is only visible from upper floors",
			},
			{
				Option:   "pet-friendly",
				Disables: []string{"quiet-zone", "accessible-room"},
				Reason:   "Pet-friendly rooms are in a dedicated wing",
			},
			{
				Option:   "twin-beds",
				Disables: []string{"connecting-room"},
				Reason:   "Connecting rooms are only configured with double beds",
			},
		},
		ExemptCategories: []string{CategoryExactView},
	}
}
