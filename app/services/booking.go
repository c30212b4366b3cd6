// Package services holds the business rules that do not touch storage:
// booking eligibility, training authoring checks and input validation.
// Handlers apply these before writing; database constraints and triggers
// back the same invariants.
package services

import (
	"errors"
	"time"

	"github.com/YazevStas/db-project/app/models"
)

var (
	ErrNoAccess            = errors.New("none of the client's active subscriptions grants access to this training")
	ErrTrainingStarted     = errors.New("training has already started")
	ErrNotGroup            = errors.New("individual trainings cannot be booked through the feed")
	ErrClientRequired      = errors.New("an individual training needs a client at creation")
	ErrAccessTypesRequired = errors.New("a group training needs at least one allowed subscription type")
	ErrBadCapacity         = errors.New("a group training needs a participant limit of at least 1")
	ErrBadDateRange        = errors.New("end time must be after start time")
)

// ActiveEntitlementSet collects the distinct subscription-type IDs that
// grant the client access today: subscriptions in the active status whose
// end date is on or after today.
func ActiveEntitlementSet(subs []*models.ClientSubscription, today time.Time) map[string]bool {
	entitlements := make(map[string]bool)
	for _, sub := range subs {
		if sub.Entitles(today) {
			entitlements[sub.SubscriptionTypeID] = true
		}
	}
	return entitlements
}

// CheckBookable validates one booking attempt against the eligibility
// rule: future group training, access-type intersection, not already
// booked. The duplicate-booking case is ultimately decided by the
// storage-layer primary key; this check only keeps the feed honest.
func CheckBookable(t *models.Training, entitlements map[string]bool, alreadyBooked bool, now time.Time) error {
	if !t.IsGroup {
		return ErrNotGroup
	}
	if !t.StartTime.After(now) {
		return ErrTrainingStarted
	}
	if alreadyBooked {
		return errors.New("client is already booked for this training")
	}
	for _, typeID := range t.AllowedTypeIDs() {
		if entitlements[typeID] {
			return nil
		}
	}
	return ErrNoAccess
}

// EligibleTrainings filters a training list down to what one client may
// book. The client dashboard normally gets this from a single SQL query;
// this in-process equivalent serves deployments without the view layer
// and keeps the rule testable.
func EligibleTrainings(trainings []*models.Training, entitlements map[string]bool, bookedIDs map[string]bool, now time.Time) []*models.Training {
	var eligible []*models.Training
	for _, t := range trainings {
		if err := CheckBookable(t, entitlements, bookedIDs[t.ID], now); err == nil {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// CapacityReached reports whether a group training cannot take another
// confirmed participant. Checked before every insert; the storage trigger,
// where installed, is the race-safe backstop.
func CapacityReached(maxParticipants, confirmedCount int) bool {
	return confirmedCount >= maxParticipants
}

// TrainingInput is what the authoring forms submit.
type TrainingInput struct {
	Name            string
	SectionID       string
	TrainerID       *string
	StartTime       time.Time
	EndTime         time.Time
	IsGroup         bool
	MaxParticipants int
	ClientID        *string
	AllowedTypeIDs  []string
}

// ValidateTrainingInput enforces the authoring rule before anything is
// persisted: an individual training must name its client, a group training
// must name at least one access type and a positive capacity.
func ValidateTrainingInput(in TrainingInput) error {
	if !in.EndTime.After(in.StartTime) {
		return ErrBadDateRange
	}
	if in.IsGroup {
		if len(in.AllowedTypeIDs) == 0 {
			return ErrAccessTypesRequired
		}
		if in.MaxParticipants < 1 {
			return ErrBadCapacity
		}
		return nil
	}
	if in.ClientID == nil || *in.ClientID == "" {
		return ErrClientRequired
	}
	return nil
}
