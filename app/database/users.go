package database

import (
	"database/sql"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

func scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var role string
	err := row.Scan(&user.ID, &user.Username, &user.Password, &role, &user.ClientID, &user.StaffID)
	if err != nil {
		return nil, err
	}
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}
	user.Role = parsed
	return user, nil
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	query := `SELECT id, username, password, role, client_id, staff_id
			  FROM users WHERE username = $1`
	return scanUser(db.QueryRow(query, username))
}

// CreateUser inserts a login identity. The password must already be hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `INSERT INTO users (id, username, password, role, client_id, staff_id)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := db.Exec(query, user.ID, user.Username, user.Password, string(user.Role), user.ClientID, user.StaffID)
	return TranslateError(err)
}

// CreateUserTx is CreateUser inside an open transaction, for flows that
// create a client and its login atomically.
func CreateUserTx(tx *sql.Tx, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `INSERT INTO users (id, username, password, role, client_id, staff_id)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(query, user.ID, user.Username, user.Password, string(user.Role), user.ClientID, user.StaffID)
	return TranslateError(err)
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// CountUsers backs the seed guard: the demo dataset is only created when
// the user table is still empty.
func CountUsers(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}
