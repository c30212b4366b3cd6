package database

import (
	"database/sql"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

// GetEquipment lists inventory with section names joined in.
func GetEquipment(db *sql.DB) ([]*models.Equipment, error) {
	query := `SELECT e.id, e.name, e.model, e.section_id, e.purchase_date,
			  e.warranty_months, e.last_maintenance_date, e.quantity, s.name
			  FROM equipment e
			  JOIN sections s ON s.id = e.section_id
			  ORDER BY e.name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.Equipment
	for rows.Next() {
		e := &models.Equipment{Section: &models.Section{}}
		err := rows.Scan(&e.ID, &e.Name, &e.Model, &e.SectionID, &e.PurchaseDate,
			&e.WarrantyMonths, &e.LastMaintenanceDate, &e.Quantity, &e.Section.Name)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func GetEquipmentByID(db *sql.DB, equipmentID string) (*models.Equipment, error) {
	e := &models.Equipment{}
	query := `SELECT id, name, model, section_id, purchase_date, warranty_months,
			  last_maintenance_date, quantity
			  FROM equipment WHERE id = $1`
	err := db.QueryRow(query, equipmentID).Scan(&e.ID, &e.Name, &e.Model, &e.SectionID,
		&e.PurchaseDate, &e.WarrantyMonths, &e.LastMaintenanceDate, &e.Quantity)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateEquipment(db *sql.DB, e *models.Equipment) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `INSERT INTO equipment (id, name, model, section_id, purchase_date,
			  warranty_months, last_maintenance_date, quantity)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := db.Exec(query, e.ID, e.Name, e.Model, e.SectionID, e.PurchaseDate,
		e.WarrantyMonths, e.LastMaintenanceDate, e.Quantity)
	return err
}

func UpdateEquipment(db *sql.DB, e *models.Equipment) error {
	query := `UPDATE equipment SET name = $1, model = $2, quantity = $3,
			  last_maintenance_date = $4 WHERE id = $5`
	_, err := db.Exec(query, e.Name, e.Model, e.Quantity, e.LastMaintenanceDate, e.ID)
	return err
}
