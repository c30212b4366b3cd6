package database

import (
	"database/sql"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

const staffColumns = `s.id, s.last_name, s.first_name, s.middle_name, s.birth_date, s.gender,
	s.phone, s.passport_series, s.passport_number, s.address, s.education,
	s.inn, s.snils, s.hire_date, s.position_id, s.salary`

func scanStaff(scanner interface{ Scan(...any) error }) (*models.Staff, error) {
	s := &models.Staff{}
	err := scanner.Scan(&s.ID, &s.LastName, &s.FirstName, &s.MiddleName, &s.BirthDate,
		&s.Gender, &s.Phone, &s.PassportSeries, &s.PassportNumber, &s.Address,
		&s.Education, &s.INN, &s.SNILS, &s.HireDate, &s.PositionID, &s.Salary)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetAllStaff lists staff with their positions joined in.
func GetAllStaff(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT ` + staffColumns + `, p.id, p.name, p.min_salary, p.max_salary
			  FROM staff s
			  LEFT JOIN positions p ON p.id = s.position_id
			  ORDER BY s.last_name, s.first_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []*models.Staff
	for rows.Next() {
		s := &models.Staff{}
		var posID, posName *string
		var minSalary, maxSalary *float64
		err := rows.Scan(&s.ID, &s.LastName, &s.FirstName, &s.MiddleName, &s.BirthDate,
			&s.Gender, &s.Phone, &s.PassportSeries, &s.PassportNumber, &s.Address,
			&s.Education, &s.INN, &s.SNILS, &s.HireDate, &s.PositionID, &s.Salary,
			&posID, &posName, &minSalary, &maxSalary)
		if err != nil {
			return nil, err
		}
		if posID != nil {
			s.Position = &models.Position{ID: *posID, Name: *posName, MinSalary: *minSalary, MaxSalary: *maxSalary}
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

func GetStaffByID(db *sql.DB, staffID string) (*models.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff s WHERE s.id = $1`
	return scanStaff(db.QueryRow(query, staffID))
}

func CreateStaff(db *sql.DB, s *models.Staff) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `INSERT INTO staff (id, last_name, first_name, middle_name, birth_date, gender,
			  phone, passport_series, passport_number, address, education,
			  inn, snils, hire_date, position_id, salary)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := db.Exec(query, s.ID, s.LastName, s.FirstName, s.MiddleName, s.BirthDate,
		s.Gender, s.Phone, s.PassportSeries, s.PassportNumber, s.Address, s.Education,
		s.INN, s.SNILS, s.HireDate, s.PositionID, s.Salary)
	return TranslateError(err)
}

func UpdateStaff(db *sql.DB, s *models.Staff) error {
	query := `UPDATE staff SET last_name = $1, first_name = $2, middle_name = $3,
			  birth_date = $4, gender = $5, phone = $6, passport_series = $7,
			  passport_number = $8, address = $9, education = $10, inn = $11,
			  snils = $12, hire_date = $13, position_id = $14, salary = $15
			  WHERE id = $16`
	_, err := db.Exec(query, s.LastName, s.FirstName, s.MiddleName, s.BirthDate,
		s.Gender, s.Phone, s.PassportSeries, s.PassportNumber, s.Address, s.Education,
		s.INN, s.SNILS, s.HireDate, s.PositionID, s.Salary, s.ID)
	return TranslateError(err)
}

// DeleteStaff removes a staff member; the linked login user and issued
// warnings cascade, trainings keep a NULL trainer. Warnings are cleared
// explicitly too, for databases created before the cascade was declared.
func DeleteStaff(db *sql.DB, staffID string) error {
	if _, err := db.Exec(`UPDATE trainings SET trainer_id = NULL WHERE trainer_id = $1`, staffID); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM warnings WHERE staff_id = $1`, staffID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM staff WHERE id = $1`, staffID)
	return err
}

func GetPositions(db *sql.DB) ([]*models.Position, error) {
	rows, err := db.Query(`SELECT id, name, min_salary, max_salary FROM positions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []*models.Position
	for rows.Next() {
		p := &models.Position{}
		if err := rows.Scan(&p.ID, &p.Name, &p.MinSalary, &p.MaxSalary); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

// GetTrainers lists staff holding the trainer position, for the training
// authoring forms.
func GetTrainers(db *sql.DB) ([]*models.Staff, error) {
	query := `SELECT ` + staffColumns + `
			  FROM staff s
			  JOIN positions p ON p.id = s.position_id
			  WHERE p.name = 'Trainer'
			  ORDER BY s.last_name`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []*models.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, s)
	}
	return trainers, rows.Err()
}
