package conflicts

import "upsell/models"

// ConflictResolver analyzes a full selection of rooms and extras.
type ConflictResolver interface {
	AnalyzeConflicts(rooms []models.SelectedRoom, extras []models.SelectedExtra) models.ConflictResult
	GenerateResolutions(conflict models.ConflictDetail, rooms []models.SelectedRoom, extras []models.SelectedExtra) []models.ResolutionSuggestion
}

// ServicePair is a pair of named extras that cannot be booked together.
type ServicePair struct {
	First  string
	Second string
	Reason string
}

// DefaultMaxRooms is the number of rooms a single reservation may hold.
const DefaultMaxRooms = 3

// DefaultIncompatibleServices lists extras that exclude each other.
var DefaultIncompatibleServices = []ServicePair{
	{First: "Early Check-in", Second: "Late Check-out", Reason: "Early check-in and late check-out cannot be combined on the same stay"},
	{First: "Romantic Package", Second: "Family Package", Reason: "Romantic and family packages target different stays"},
	{First: "Airport Pickup", Second: "Private Transfer", Reason: "Both services cover the same arrival transfer"},
	{First: "Breakfast Included", Second: "Room Only", Reason: "A room-only rate excludes breakfast"},
}

// DefaultTimeIntensiveKeywords mark extras that occupy a large part of a day.
var DefaultTimeIntensiveKeywords = []string{"spa", "massage", "tour"}

// Resolver is a stateless ConflictResolver over fixed rule tables.
type Resolver struct {
	maxRooms      int
	incompatible  []ServicePair
	timeIntensive []string
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithMaxRooms overrides the room quota.
func WithMaxRooms(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxRooms = n
		}
	}
}

// WithIncompatibleServices replaces the incompatible service table.
func WithIncompatibleServices(pairs []ServicePair) Option {
	return func(r *Resolver) { r.incompatible = pairs }
}

// WithTimeIntensiveKeywords replaces the time-intensive keyword list.
func WithTimeIntensiveKeywords(keywords []string) Option {
	return func(r *Resolver) { r.timeIntensive = keywords }
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		maxRooms:      DefaultMaxRooms,
		incompatible:  DefaultIncompatibleServices,
		timeIntensive: DefaultTimeIntensiveKeywords,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
