package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/YazevStas/db-project/app/config"
	"github.com/YazevStas/db-project/app/database"
	"github.com/YazevStas/db-project/app/models"
	"github.com/YazevStas/db-project/app/routes/auth"
)

// Creates a staff member with an admin login, for first deployment when
// the demo seed is not wanted.
func main() {
	lastName := flag.String("last-name", "", "staff last name")
	firstName := flag.String("first-name", "", "staff first name")
	inn := flag.String("inn", "", "tax ID, 12 digits")
	snils := flag.String("snils", "", "social-insurance ID, 11 digits")
	birthDate := flag.String("birth-date", "", "YYYY-MM-DD")
	username := flag.String("username", "admin", "login username")
	password := flag.String("password", "", "login password")
	flag.Parse()

	if *lastName == "" || *firstName == "" || *inn == "" || *snils == "" ||
		*birthDate == "" || *password == "" {
		log.Fatal("all of -last-name, -first-name, -inn, -snils, -birth-date, -password are required")
	}
	birth, err := time.Parse("2006-01-02", *birthDate)
	if err != nil {
		log.Fatal("invalid birth date: ", err)
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("failed to ensure schema: ", err)
	}

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("failed to hash password: ", err)
	}

	// Re-running with an existing username resets that login's password.
	if existing, err := database.GetUserByUsername(db, *username); err == nil {
		if err := database.UpdateUserPassword(db, existing.ID, hashed); err != nil {
			log.Fatal("failed to reset password: ", err)
		}
		fmt.Printf("User %q already existed, password reset\n", *username)
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Fatal("failed to check for existing user: ", err)
	}

	staff := &models.Staff{
		LastName:  *lastName,
		FirstName: *firstName,
		BirthDate: birth,
		INN:       *inn,
		SNILS:     *snils,
		HireDate:  time.Now(),
	}
	if err := database.CreateStaff(db, staff); err != nil {
		log.Fatal("failed to create staff record: ", err)
	}

	user := &models.User{
		Username: *username,
		Password: hashed,
		Role:     models.RoleAdmin,
		StaffID:  &staff.ID,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("failed to create user: ", err)
	}

	fmt.Printf("Admin user %q created for %s %s\n", user.Username, staff.FirstName, staff.LastName)
}
