package database

import (
	"database/sql"
	"log"
)

// schemaStatements are ordered so foreign keys always point at
// already-created tables. Client and staff dependents carry ON DELETE
// CASCADE, so deleting either removes its subscriptions, bookings,
// warnings, contacts and login user in one go.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS statuses (
		name VARCHAR(50) PRIMARY KEY,
		description VARCHAR(200)
	)`,
	`CREATE TABLE IF NOT EXISTS positions (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		min_salary NUMERIC(10,2) NOT NULL,
		max_salary NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payment_methods (
		id VARCHAR(20) PRIMARY KEY,
		name VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id VARCHAR(50) PRIMARY KEY,
		last_name VARCHAR(50) NOT NULL,
		first_name VARCHAR(50) NOT NULL,
		middle_name VARCHAR(50),
		reg_date DATE NOT NULL,
		discount NUMERIC(5,2) DEFAULT 0.0
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id VARCHAR(50) PRIMARY KEY,
		last_name VARCHAR(50) NOT NULL,
		first_name VARCHAR(50) NOT NULL,
		middle_name VARCHAR(50),
		birth_date DATE NOT NULL,
		gender VARCHAR(1),
		phone VARCHAR(20),
		passport_series VARCHAR(4),
		passport_number VARCHAR(6),
		address VARCHAR(255),
		education VARCHAR(255),
		inn VARCHAR(12) NOT NULL CONSTRAINT staff_inn_key UNIQUE,
		snils VARCHAR(11) NOT NULL CONSTRAINT staff_snils_key UNIQUE,
		hire_date DATE NOT NULL,
		position_id VARCHAR(50) REFERENCES positions(id),
		salary NUMERIC(10,2)
	)`,
	`CREATE TABLE IF NOT EXISTS sections (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		status_name VARCHAR(50) REFERENCES statuses(name)
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		model VARCHAR(100),
		section_id VARCHAR(50) NOT NULL REFERENCES sections(id),
		purchase_date DATE NOT NULL,
		warranty_months INTEGER NOT NULL,
		last_maintenance_date DATE,
		quantity INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(50) PRIMARY KEY,
		username VARCHAR(50) NOT NULL CONSTRAINT users_username_key UNIQUE,
		password VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL,
		client_id VARCHAR(50) REFERENCES clients(id) ON DELETE CASCADE,
		staff_id VARCHAR(50) REFERENCES staff(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS subscription_types (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		cost NUMERIC(10,2) NOT NULL,
		description VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS client_subscriptions (
		id VARCHAR(50) PRIMARY KEY,
		client_id VARCHAR(50) NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		subscription_type_id VARCHAR(50) NOT NULL REFERENCES subscription_types(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		status_name VARCHAR(50) REFERENCES statuses(name)
	)`,
	`CREATE TABLE IF NOT EXISTS trainings (
		id VARCHAR(50) PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		section_id VARCHAR(50) NOT NULL REFERENCES sections(id),
		trainer_id VARCHAR(50) REFERENCES staff(id),
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP NOT NULL,
		is_group BOOLEAN NOT NULL DEFAULT FALSE,
		max_participants INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS training_subscription_access (
		training_id VARCHAR(50) NOT NULL REFERENCES trainings(id) ON DELETE CASCADE,
		subscription_type_id VARCHAR(50) NOT NULL REFERENCES subscription_types(id) ON DELETE CASCADE,
		CONSTRAINT training_subscription_access_pkey PRIMARY KEY (training_id, subscription_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS training_participants (
		training_id VARCHAR(50) NOT NULL REFERENCES trainings(id) ON DELETE CASCADE,
		client_id VARCHAR(50) NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		status_name VARCHAR(50) REFERENCES statuses(name),
		CONSTRAINT training_participants_pkey PRIMARY KEY (training_id, client_id)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id VARCHAR(50) PRIMARY KEY,
		client_subscription_id VARCHAR(50) NOT NULL
			CONSTRAINT payments_client_subscription_id_key UNIQUE
			REFERENCES client_subscriptions(id) ON DELETE CASCADE,
		amount NUMERIC(10,2) NOT NULL,
		date DATE NOT NULL,
		method_id VARCHAR(20) NOT NULL REFERENCES payment_methods(id)
	)`,
	`CREATE TABLE IF NOT EXISTS client_contacts (
		client_id VARCHAR(50) NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		contact_type VARCHAR(20) NOT NULL,
		contact_value VARCHAR(254) NOT NULL,
		CONSTRAINT client_contacts_pkey PRIMARY KEY (client_id, contact_type)
	)`,
	`CREATE TABLE IF NOT EXISTS warnings (
		id SERIAL PRIMARY KEY,
		client_id VARCHAR(50) NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		staff_id VARCHAR(50) NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
		date DATE NOT NULL,
		reason VARCHAR(200) NOT NULL
	)`,
}

// EnsureSchema creates all tables if they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	log.Println("Ensuring database schema...")
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	log.Println("Database schema is up to date")
	return nil
}
