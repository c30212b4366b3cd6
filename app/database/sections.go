package database

import (
	"database/sql"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

func GetSections(db *sql.DB) ([]*models.Section, error) {
	rows, err := db.Query(`SELECT id, name, status_name FROM sections ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		s := &models.Section{}
		if err := rows.Scan(&s.ID, &s.Name, &s.StatusName); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func CreateSection(db *sql.DB, s *models.Section) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := db.Exec(`INSERT INTO sections (id, name, status_name) VALUES ($1, $2, $3)`,
		s.ID, s.Name, s.StatusName)
	return err
}

func UpdateSectionStatus(db *sql.DB, sectionID, statusName string) error {
	_, err := db.Exec(`UPDATE sections SET status_name = $1 WHERE id = $2`, statusName, sectionID)
	return err
}

func GetStatuses(db *sql.DB) ([]*models.Status, error) {
	rows, err := db.Query(`SELECT name, description FROM statuses ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.Status
	for rows.Next() {
		s := &models.Status{}
		if err := rows.Scan(&s.Name, &s.Description); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
