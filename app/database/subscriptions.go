package database

import (
	"database/sql"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

func GetSubscriptionTypes(db *sql.DB) ([]*models.SubscriptionType, error) {
	rows, err := db.Query(`SELECT id, name, cost, description FROM subscription_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.SubscriptionType
	for rows.Next() {
		st := &models.SubscriptionType{}
		if err := rows.Scan(&st.ID, &st.Name, &st.Cost, &st.Description); err != nil {
			return nil, err
		}
		types = append(types, st)
	}
	return types, rows.Err()
}

func CreateSubscriptionType(db *sql.DB, st *models.SubscriptionType) error {
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	query := `INSERT INTO subscription_types (id, name, cost, description) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, st.ID, st.Name, st.Cost, st.Description)
	return err
}

func CreateClientSubscription(db *sql.DB, cs *models.ClientSubscription) error {
	if cs.ID == "" {
		cs.ID = uuid.New().String()
	}
	query := `INSERT INTO client_subscriptions (id, client_id, subscription_type_id, start_date, end_date, status_name)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, cs.ID, cs.ClientID, cs.SubscriptionTypeID,
		cs.StartDate, cs.EndDate, string(cs.Status))
	return err
}

// GetClientSubscriptions returns a client's subscriptions newest first,
// with the type joined in.
func GetClientSubscriptions(db *sql.DB, clientID string) ([]*models.ClientSubscription, error) {
	query := `SELECT cs.id, cs.client_id, cs.subscription_type_id, cs.start_date, cs.end_date, cs.status_name,
			  st.id, st.name, st.cost, st.description
			  FROM client_subscriptions cs
			  JOIN subscription_types st ON st.id = cs.subscription_type_id
			  WHERE cs.client_id = $1
			  ORDER BY cs.end_date DESC`
	rows, err := db.Query(query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.ClientSubscription
	for rows.Next() {
		cs := &models.ClientSubscription{SubscriptionType: &models.SubscriptionType{}}
		var status string
		err := rows.Scan(&cs.ID, &cs.ClientID, &cs.SubscriptionTypeID, &cs.StartDate,
			&cs.EndDate, &status,
			&cs.SubscriptionType.ID, &cs.SubscriptionType.Name,
			&cs.SubscriptionType.Cost, &cs.SubscriptionType.Description)
		if err != nil {
			return nil, err
		}
		cs.Status = models.SubscriptionStatus(status)
		subs = append(subs, cs)
	}
	return subs, rows.Err()
}

// GetAllClientSubscriptions lists every subscription with client and type
// names, for the admin dashboard.
func GetAllClientSubscriptions(db *sql.DB) ([]*models.ClientSubscription, error) {
	query := `SELECT cs.id, cs.client_id, cs.subscription_type_id, cs.start_date, cs.end_date, cs.status_name,
			  c.last_name, c.first_name, st.name, st.cost
			  FROM client_subscriptions cs
			  JOIN clients c ON c.id = cs.client_id
			  JOIN subscription_types st ON st.id = cs.subscription_type_id
			  ORDER BY cs.end_date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.ClientSubscription
	for rows.Next() {
		cs := &models.ClientSubscription{
			Client:           &models.Client{},
			SubscriptionType: &models.SubscriptionType{},
		}
		var status string
		err := rows.Scan(&cs.ID, &cs.ClientID, &cs.SubscriptionTypeID, &cs.StartDate,
			&cs.EndDate, &status, &cs.Client.LastName, &cs.Client.FirstName,
			&cs.SubscriptionType.Name, &cs.SubscriptionType.Cost)
		if err != nil {
			return nil, err
		}
		cs.Status = models.SubscriptionStatus(status)
		subs = append(subs, cs)
	}
	return subs, rows.Err()
}

// GetActiveSubscriptions prefers the read-optimized view and falls back to
// the equivalent query when the deployment has no views installed.
func GetActiveSubscriptions(db *sql.DB) ([]*models.ClientSubscription, error) {
	viewQuery := `SELECT id, client_id, subscription_type_id, start_date, end_date,
				  last_name, first_name, type_name, cost
				  FROM v_active_subscriptions ORDER BY end_date`
	fallback := `SELECT cs.id, cs.client_id, cs.subscription_type_id, cs.start_date, cs.end_date,
				 c.last_name, c.first_name, st.name, st.cost
				 FROM client_subscriptions cs
				 JOIN clients c ON c.id = cs.client_id
				 JOIN subscription_types st ON st.id = cs.subscription_type_id
				 WHERE cs.status_name = 'active' AND cs.end_date >= CURRENT_DATE
				 ORDER BY cs.end_date`

	rows, err := db.Query(viewQuery)
	if err != nil {
		rows, err = db.Query(fallback)
		if err != nil {
			return nil, err
		}
	}
	defer rows.Close()

	var subs []*models.ClientSubscription
	for rows.Next() {
		cs := &models.ClientSubscription{
			Status:           models.SubscriptionActive,
			Client:           &models.Client{},
			SubscriptionType: &models.SubscriptionType{},
		}
		err := rows.Scan(&cs.ID, &cs.ClientID, &cs.SubscriptionTypeID, &cs.StartDate,
			&cs.EndDate, &cs.Client.LastName, &cs.Client.FirstName,
			&cs.SubscriptionType.Name, &cs.SubscriptionType.Cost)
		if err != nil {
			return nil, err
		}
		subs = append(subs, cs)
	}
	return subs, rows.Err()
}

// TrainingLoad is one occupancy row per training.
type TrainingLoad struct {
	ID              string
	Name            string
	StartTime       time.Time
	MaxParticipants int
	ConfirmedCount  int
}

// GetTrainingLoad reports confirmed bookings against capacity per
// training. Prefers the view, falls back to the equivalent aggregate.
func GetTrainingLoad(db *sql.DB) ([]*TrainingLoad, error) {
	viewQuery := `SELECT id, name, start_time, max_participants, confirmed_count
				  FROM v_training_load ORDER BY start_time DESC`
	fallback := `SELECT t.id, t.name, t.start_time, t.max_participants,
				 COUNT(tp.client_id) FILTER (WHERE tp.status_name = 'confirmed')
				 FROM trainings t
				 LEFT JOIN training_participants tp ON tp.training_id = t.id
				 GROUP BY t.id ORDER BY t.start_time DESC`

	rows, err := db.Query(viewQuery)
	if err != nil {
		rows, err = db.Query(fallback)
		if err != nil {
			return nil, err
		}
	}
	defer rows.Close()

	var loads []*TrainingLoad
	for rows.Next() {
		l := &TrainingLoad{}
		if err := rows.Scan(&l.ID, &l.Name, &l.StartTime, &l.MaxParticipants, &l.ConfirmedCount); err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, rows.Err()
}

func UpdateSubscriptionStatus(db *sql.DB, subscriptionID string, status models.SubscriptionStatus) error {
	query := `UPDATE client_subscriptions SET status_name = $1 WHERE id = $2`
	_, err := db.Exec(query, string(status), subscriptionID)
	return err
}
