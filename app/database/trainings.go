package database

import (
	"database/sql"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CreateTraining persists a training and its second-step rows in one
// transaction. For an individual training clientID must point at the
// single participant; for a group training allowedTypeIDs must hold the
// subscription types granting access. Any failure rolls the whole thing
// back, so a half-created training is never observable.
func CreateTraining(db *sql.DB, t *models.Training, clientID *string, allowedTypeIDs []string) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if !t.IsGroup {
		t.MaxParticipants = 1
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO trainings (id, name, section_id, trainer_id, start_time, end_time, is_group, max_participants)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.Exec(query, t.ID, t.Name, t.SectionID, t.TrainerID,
		t.StartTime, t.EndTime, t.IsGroup, t.MaxParticipants); err != nil {
		return TranslateError(err)
	}

	if t.IsGroup {
		for _, typeID := range allowedTypeIDs {
			if _, err := tx.Exec(
				`INSERT INTO training_subscription_access (training_id, subscription_type_id) VALUES ($1, $2)`,
				t.ID, typeID); err != nil {
				return TranslateError(err)
			}
		}
	} else {
		if _, err := tx.Exec(
			`INSERT INTO training_participants (training_id, client_id, status_name) VALUES ($1, $2, $3)`,
			t.ID, *clientID, string(models.ParticipantConfirmed)); err != nil {
			return TranslateError(err)
		}
	}

	return tx.Commit()
}

func GetTrainingByID(db *sql.DB, trainingID string) (*models.Training, error) {
	t := &models.Training{}
	query := `SELECT id, name, section_id, trainer_id, start_time, end_time, is_group, max_participants
			  FROM trainings WHERE id = $1`
	err := db.QueryRow(query, trainingID).Scan(&t.ID, &t.Name, &t.SectionID, &t.TrainerID,
		&t.StartTime, &t.EndTime, &t.IsGroup, &t.MaxParticipants)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTrainingsDetailed lists all trainings newest first with section and
// trainer names and the confirmed participant count, for the dashboards.
func GetTrainingsDetailed(db *sql.DB) ([]*models.Training, error) {
	query := `SELECT t.id, t.name, t.section_id, t.trainer_id, t.start_time, t.end_time,
			  t.is_group, t.max_participants, sec.name,
			  s.last_name, s.first_name,
			  COUNT(tp.client_id) FILTER (WHERE tp.status_name = 'confirmed')
			  FROM trainings t
			  JOIN sections sec ON sec.id = t.section_id
			  LEFT JOIN staff s ON s.id = t.trainer_id
			  LEFT JOIN training_participants tp ON tp.training_id = t.id
			  GROUP BY t.id, sec.name, s.last_name, s.first_name
			  ORDER BY t.start_time DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*models.Training
	for rows.Next() {
		t := &models.Training{Section: &models.Section{}}
		var trainerLast, trainerFirst *string
		var confirmed int
		err := rows.Scan(&t.ID, &t.Name, &t.SectionID, &t.TrainerID, &t.StartTime,
			&t.EndTime, &t.IsGroup, &t.MaxParticipants, &t.Section.Name,
			&trainerLast, &trainerFirst, &confirmed)
		if err != nil {
			return nil, err
		}
		if trainerLast != nil {
			t.Trainer = &models.Staff{LastName: *trainerLast, FirstName: *trainerFirst}
		}
		for i := 0; i < confirmed; i++ {
			t.Participants = append(t.Participants,
				&models.TrainingParticipant{TrainingID: t.ID, Status: models.ParticipantConfirmed})
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}

// GetUpcomingTrainingsForTrainer returns a trainer's future sessions with
// the participant list loaded, soonest first.
func GetUpcomingTrainingsForTrainer(db *sql.DB, staffID string) ([]*models.Training, error) {
	query := `SELECT t.id, t.name, t.section_id, t.trainer_id, t.start_time, t.end_time,
			  t.is_group, t.max_participants, sec.name
			  FROM trainings t
			  JOIN sections sec ON sec.id = t.section_id
			  WHERE t.trainer_id = $1 AND t.start_time > NOW()
			  ORDER BY t.start_time`
	rows, err := db.Query(query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*models.Training
	for rows.Next() {
		t := &models.Training{Section: &models.Section{}}
		err := rows.Scan(&t.ID, &t.Name, &t.SectionID, &t.TrainerID, &t.StartTime,
			&t.EndTime, &t.IsGroup, &t.MaxParticipants, &t.Section.Name)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, t := range trainings {
		participants, err := GetParticipants(db, t.ID)
		if err != nil {
			return nil, err
		}
		t.Participants = participants
	}
	return trainings, nil
}

func GetParticipants(db *sql.DB, trainingID string) ([]*models.TrainingParticipant, error) {
	query := `SELECT tp.training_id, tp.client_id, tp.status_name, c.last_name, c.first_name
			  FROM training_participants tp
			  JOIN clients c ON c.id = tp.client_id
			  WHERE tp.training_id = $1 ORDER BY c.last_name`
	rows, err := db.Query(query, trainingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.TrainingParticipant
	for rows.Next() {
		p := &models.TrainingParticipant{Client: &models.Client{}}
		var status string
		if err := rows.Scan(&p.TrainingID, &p.ClientID, &status,
			&p.Client.LastName, &p.Client.FirstName); err != nil {
			return nil, err
		}
		p.Status = models.ParticipantStatus(status)
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// GetEligibleTrainings returns the group trainings a client may still book:
// future start, access granted to one of the client's active subscription
// types, and no existing booking by this client.
func GetEligibleTrainings(db *sql.DB, clientID string, now time.Time) ([]*models.Training, error) {
	query := `SELECT DISTINCT t.id, t.name, t.section_id, t.trainer_id, t.start_time, t.end_time,
			  t.is_group, t.max_participants, sec.name
			  FROM trainings t
			  JOIN sections sec ON sec.id = t.section_id
			  JOIN training_subscription_access tsa ON tsa.training_id = t.id
			  JOIN client_subscriptions cs ON cs.subscription_type_id = tsa.subscription_type_id
			  WHERE t.is_group = TRUE
			    AND t.start_time > $2
			    AND cs.client_id = $1
			    AND cs.status_name = 'active'
			    AND cs.end_date >= $2::date
			    AND NOT EXISTS (
			        SELECT 1 FROM training_participants tp
			        WHERE tp.training_id = t.id AND tp.client_id = $1)
			  ORDER BY t.start_time`
	rows, err := db.Query(query, clientID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*models.Training
	for rows.Next() {
		t := &models.Training{Section: &models.Section{}}
		err := rows.Scan(&t.ID, &t.Name, &t.SectionID, &t.TrainerID, &t.StartTime,
			&t.EndTime, &t.IsGroup, &t.MaxParticipants, &t.Section.Name)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}

// GetClientTrainings returns every training the client is booked on.
func GetClientTrainings(db *sql.DB, clientID string) ([]*models.Training, error) {
	query := `SELECT t.id, t.name, t.section_id, t.trainer_id, t.start_time, t.end_time,
			  t.is_group, t.max_participants, sec.name, tp.status_name
			  FROM trainings t
			  JOIN sections sec ON sec.id = t.section_id
			  JOIN training_participants tp ON tp.training_id = t.id
			  WHERE tp.client_id = $1
			  ORDER BY t.start_time`
	rows, err := db.Query(query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*models.Training
	for rows.Next() {
		t := &models.Training{Section: &models.Section{}}
		var status string
		err := rows.Scan(&t.ID, &t.Name, &t.SectionID, &t.TrainerID, &t.StartTime,
			&t.EndTime, &t.IsGroup, &t.MaxParticipants, &t.Section.Name, &status)
		if err != nil {
			return nil, err
		}
		t.Participants = []*models.TrainingParticipant{{
			TrainingID: t.ID,
			ClientID:   clientID,
			Status:     models.ParticipantStatus(status),
		}}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}

// GetAllowedTypeIDs returns the subscription-type identifiers granting
// access to a training.
func GetAllowedTypeIDs(db *sql.DB, trainingID string) ([]string, error) {
	rows, err := db.Query(
		`SELECT subscription_type_id FROM training_subscription_access WHERE training_id = $1`,
		trainingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func CountConfirmedParticipants(db *sql.DB, trainingID string) (int, error) {
	var n int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM training_participants WHERE training_id = $1 AND status_name = $2`,
		trainingID, string(models.ParticipantConfirmed)).Scan(&n)
	return n, err
}

// AddParticipant books a client onto a training. The composite primary key
// turns a duplicate booking into ErrAlreadyBooked; the capacity trigger,
// where installed, turns an over-capacity insert into ErrTrainingFull.
func AddParticipant(db *sql.DB, trainingID, clientID string, status models.ParticipantStatus) error {
	_, err := db.Exec(
		`INSERT INTO training_participants (training_id, client_id, status_name) VALUES ($1, $2, $3)`,
		trainingID, clientID, string(status))
	return TranslateError(err)
}

// BatchGrantAccess appends access-grant rows for an existing group training.
func BatchGrantAccess(db *sql.DB, trainingID string, typeIDs []string) error {
	_, err := db.Exec(
		`INSERT INTO training_subscription_access (training_id, subscription_type_id)
		 SELECT $1, unnest($2::varchar[])
		 ON CONFLICT ON CONSTRAINT training_subscription_access_pkey DO NOTHING`,
		trainingID, pq.Array(typeIDs))
	return err
}
