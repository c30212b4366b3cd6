package services

import (
	"testing"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func groupTraining(id string, start time.Time, typeIDs ...string) *models.Training {
	t := &models.Training{
		ID:              id,
		Name:            "Group session " + id,
		IsGroup:         true,
		MaxParticipants: 10,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
	}
	for _, typeID := range typeIDs {
		t.AllowedSubscriptions = append(t.AllowedSubscriptions, &models.SubscriptionType{ID: typeID})
	}
	return t
}

func activeSub(typeID string, endDate time.Time) *models.ClientSubscription {
	return &models.ClientSubscription{
		SubscriptionTypeID: typeID,
		Status:             models.SubscriptionActive,
		EndDate:            endDate,
	}
}

func TestActiveEntitlementSet(t *testing.T) {
	subs := []*models.ClientSubscription{
		activeSub("full", testNow.AddDate(0, 1, 0)),
		// Ends exactly today: still entitles.
		activeSub("pool", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		// Lapsed yesterday.
		activeSub("gym", testNow.AddDate(0, 0, -1)),
		// Right dates, wrong status.
		{SubscriptionTypeID: "spa", Status: models.SubscriptionBlocked, EndDate: testNow.AddDate(0, 1, 0)},
		{SubscriptionTypeID: "box", Status: models.SubscriptionExpired, EndDate: testNow.AddDate(0, 1, 0)},
	}

	entitlements := ActiveEntitlementSet(subs, testNow)

	assert.Equal(t, map[string]bool{"full": true, "pool": true}, entitlements)
}

func TestCheckBookable(t *testing.T) {
	future := testNow.Add(24 * time.Hour)
	entitlements := map[string]bool{"full": true}

	tests := []struct {
		name          string
		training      *models.Training
		alreadyBooked bool
		wantErr       error
	}{
		{
			name:     "held type intersects allowed types",
			training: groupTraining("t1", future, "full", "pool"),
		},
		{
			name:     "disjoint access types",
			training: groupTraining("t2", future, "pool", "gym"),
			wantErr:  ErrNoAccess,
		},
		{
			name:     "no allowed types at all",
			training: groupTraining("t3", future),
			wantErr:  ErrNoAccess,
		},
		{
			name:     "training already started",
			training: groupTraining("t4", testNow.Add(-time.Minute), "full"),
			wantErr:  ErrTrainingStarted,
		},
		{
			name:     "training starting right now is not bookable",
			training: groupTraining("t5", testNow, "full"),
			wantErr:  ErrTrainingStarted,
		},
		{
			name: "individual training is not in the feed",
			training: &models.Training{
				ID: "t6", IsGroup: false, MaxParticipants: 1, StartTime: future,
			},
			wantErr: ErrNotGroup,
		},
		{
			name:          "duplicate booking",
			training:      groupTraining("t7", future, "full"),
			alreadyBooked: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBookable(tt.training, entitlements, tt.alreadyBooked, testNow)
			switch {
			case tt.alreadyBooked:
				assert.Error(t, err)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestEligibleTrainings(t *testing.T) {
	future := testNow.Add(48 * time.Hour)
	trainings := []*models.Training{
		groupTraining("match", future, "full"),
		groupTraining("disjoint", future, "pool"),
		groupTraining("past", testNow.Add(-time.Hour), "full"),
		groupTraining("booked", future, "full"),
	}
	entitlements := map[string]bool{"full": true}
	booked := map[string]bool{"booked": true}

	eligible := EligibleTrainings(trainings, entitlements, booked, testNow)

	require.Len(t, eligible, 1)
	assert.Equal(t, "match", eligible[0].ID)
}

func TestCapacityReached(t *testing.T) {
	// Capacity 2: two confirmed participants fill it; the third is refused.
	assert.False(t, CapacityReached(2, 0))
	assert.False(t, CapacityReached(2, 1))
	assert.True(t, CapacityReached(2, 2))
	assert.True(t, CapacityReached(2, 3))
}

func TestValidateTrainingInput(t *testing.T) {
	start := testNow.Add(24 * time.Hour)
	clientID := "c1"

	tests := []struct {
		name    string
		in      TrainingInput
		wantErr error
	}{
		{
			name: "valid group training",
			in: TrainingInput{
				Name: "Yoga", StartTime: start, EndTime: start.Add(time.Hour),
				IsGroup: true, MaxParticipants: 15, AllowedTypeIDs: []string{"full"},
			},
		},
		{
			name: "group training without access types",
			in: TrainingInput{
				Name: "Yoga", StartTime: start, EndTime: start.Add(time.Hour),
				IsGroup: true, MaxParticipants: 15,
			},
			wantErr: ErrAccessTypesRequired,
		},
		{
			name: "group training with zero capacity",
			in: TrainingInput{
				Name: "Yoga", StartTime: start, EndTime: start.Add(time.Hour),
				IsGroup: true, MaxParticipants: 0, AllowedTypeIDs: []string{"full"},
			},
			wantErr: ErrBadCapacity,
		},
		{
			name: "valid individual training",
			in: TrainingInput{
				Name: "Personal", StartTime: start, EndTime: start.Add(time.Hour),
				ClientID: &clientID,
			},
		},
		{
			name: "individual training without a client",
			in: TrainingInput{
				Name: "Personal", StartTime: start, EndTime: start.Add(time.Hour),
			},
			wantErr: ErrClientRequired,
		},
		{
			name: "end before start",
			in: TrainingInput{
				Name: "Backwards", StartTime: start, EndTime: start.Add(-time.Hour),
				IsGroup: true, MaxParticipants: 5, AllowedTypeIDs: []string{"full"},
			},
			wantErr: ErrBadDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTrainingInput(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
