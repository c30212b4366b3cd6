package models

import "time"

// Section is a physical or service area of the club (gym floor, pool).
type Section struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	StatusName *string `json:"status_name,omitempty"`
}

// Training is a scheduled session in a section, optionally led by one
// trainer. A group training is bounded by MaxParticipants and gated by
// allowed subscription types; an individual one has capacity exactly 1 and
// is bound to its single client at creation.
type Training struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	SectionID       string    `json:"section_id"`
	TrainerID       *string   `json:"trainer_id,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	IsGroup         bool      `json:"is_group"`
	MaxParticipants int       `json:"max_participants"`

	Section              *Section               `json:"section,omitempty"`
	Trainer              *Staff                 `json:"trainer,omitempty"`
	Participants         []*TrainingParticipant `json:"participants,omitempty"`
	AllowedSubscriptions []*SubscriptionType    `json:"allowed_subscriptions,omitempty"`
}

// AllowedTypeIDs returns the subscription-type identifiers gating access.
func (t *Training) AllowedTypeIDs() []string {
	ids := make([]string, 0, len(t.AllowedSubscriptions))
	for _, st := range t.AllowedSubscriptions {
		ids = append(ids, st.ID)
	}
	return ids
}

// ConfirmedCount counts confirmed participants loaded on the training.
func (t *Training) ConfirmedCount() int {
	n := 0
	for _, p := range t.Participants {
		if p.Status == ParticipantConfirmed {
			n++
		}
	}
	return n
}

// TrainingParticipant is the (training, client) booking. The composite
// primary key enforces at most one booking per client per training.
type TrainingParticipant struct {
	TrainingID string            `json:"training_id"`
	ClientID   string            `json:"client_id"`
	Status     ParticipantStatus `json:"status"`

	Training *Training `json:"training,omitempty"`
	Client   *Client   `json:"client,omitempty"`
}
