package database

import (
	"database/sql"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

func GetClients(db *sql.DB) ([]*models.Client, error) {
	query := `SELECT id, last_name, first_name, middle_name, reg_date, discount
			  FROM clients ORDER BY last_name, first_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client := &models.Client{}
		if err := rows.Scan(&client.ID, &client.LastName, &client.FirstName,
			&client.MiddleName, &client.RegDate, &client.Discount); err != nil {
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func GetClientByID(db *sql.DB, clientID string) (*models.Client, error) {
	client := &models.Client{}
	query := `SELECT id, last_name, first_name, middle_name, reg_date, discount
			  FROM clients WHERE id = $1`
	err := db.QueryRow(query, clientID).Scan(&client.ID, &client.LastName,
		&client.FirstName, &client.MiddleName, &client.RegDate, &client.Discount)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// GetClientWithContacts loads a client together with its contact records.
func GetClientWithContacts(db *sql.DB, clientID string) (*models.Client, error) {
	client, err := GetClientByID(db, clientID)
	if err != nil {
		return nil, err
	}
	contacts, err := GetClientContacts(db, clientID)
	if err != nil {
		return nil, err
	}
	client.Contacts = contacts
	return client, nil
}

func CreateClient(db *sql.DB, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.RegDate.IsZero() {
		client.RegDate = time.Now()
	}
	query := `INSERT INTO clients (id, last_name, first_name, middle_name, reg_date, discount)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, client.ID, client.LastName, client.FirstName,
		client.MiddleName, client.RegDate, client.Discount)
	return err
}

// CreateClientTx is CreateClient inside an open transaction.
func CreateClientTx(tx *sql.Tx, client *models.Client) error {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	if client.RegDate.IsZero() {
		client.RegDate = time.Now()
	}
	query := `INSERT INTO clients (id, last_name, first_name, middle_name, reg_date, discount)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(query, client.ID, client.LastName, client.FirstName,
		client.MiddleName, client.RegDate, client.Discount)
	return err
}

func UpdateClient(db *sql.DB, client *models.Client) error {
	query := `UPDATE clients SET last_name = $1, first_name = $2, middle_name = $3, discount = $4
			  WHERE id = $5`
	_, err := db.Exec(query, client.LastName, client.FirstName, client.MiddleName,
		client.Discount, client.ID)
	return err
}

// DeleteClient removes a client; dependent rows go with it via the
// ON DELETE CASCADE constraints.
func DeleteClient(db *sql.DB, clientID string) error {
	_, err := db.Exec(`DELETE FROM clients WHERE id = $1`, clientID)
	return err
}

func GetClientContacts(db *sql.DB, clientID string) ([]*models.ClientContact, error) {
	query := `SELECT client_id, contact_type, contact_value
			  FROM client_contacts WHERE client_id = $1 ORDER BY contact_type`
	rows, err := db.Query(query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.ClientContact
	for rows.Next() {
		contact := &models.ClientContact{}
		var ctype string
		if err := rows.Scan(&contact.ClientID, &ctype, &contact.ContactValue); err != nil {
			return nil, err
		}
		contact.ContactType = models.ContactType(ctype)
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// UpsertClientContact sets, replaces or removes one contact record.
// An empty value deletes the record, matching the profile form semantics.
func UpsertClientContact(db *sql.DB, clientID string, contactType models.ContactType, value string) error {
	if value == "" {
		_, err := db.Exec(`DELETE FROM client_contacts WHERE client_id = $1 AND contact_type = $2`,
			clientID, string(contactType))
		return err
	}
	query := `INSERT INTO client_contacts (client_id, contact_type, contact_value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT ON CONSTRAINT client_contacts_pkey
			  DO UPDATE SET contact_value = EXCLUDED.contact_value`
	_, err := db.Exec(query, clientID, string(contactType), value)
	return err
}

func CreateWarning(db *sql.DB, warning *models.Warning) error {
	query := `INSERT INTO warnings (client_id, staff_id, date, reason)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	return db.QueryRow(query, warning.ClientID, warning.StaffID, warning.Date, warning.Reason).
		Scan(&warning.ID)
}

func GetWarningsForClient(db *sql.DB, clientID string) ([]*models.Warning, error) {
	query := `SELECT w.id, w.client_id, w.staff_id, w.date, w.reason,
			  s.last_name, s.first_name
			  FROM warnings w
			  JOIN staff s ON s.id = w.staff_id
			  WHERE w.client_id = $1 ORDER BY w.date DESC`
	rows, err := db.Query(query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warnings []*models.Warning
	for rows.Next() {
		w := &models.Warning{Staff: &models.Staff{}}
		if err := rows.Scan(&w.ID, &w.ClientID, &w.StaffID, &w.Date, &w.Reason,
			&w.Staff.LastName, &w.Staff.FirstName); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}
