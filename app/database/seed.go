package database

import (
	"database/sql"
	"log"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedInitialData populates the reference tables and a minimal demo
// dataset. Safe to call on every start: it is a no-op as soon as the user
// table has rows.
func SeedInitialData(db *sql.DB) error {
	count, err := CountUsers(db)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	log.Println("Empty database, creating initial data...")

	statuses := map[string]string{
		string(models.SubscriptionActive):    "Active",
		string(models.SubscriptionExpired):   "Expired",
		string(models.SubscriptionBlocked):   "Blocked",
		string(models.SubscriptionPending):   "Pending activation",
		string(models.ParticipantConfirmed):  "Confirmed",
		string(models.SubscriptionCancelled): "Cancelled",
	}
	for name, description := range statuses {
		if _, err := db.Exec(
			`INSERT INTO statuses (name, description) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			name, description); err != nil {
			return err
		}
	}

	positions := []*models.Position{
		{ID: "pos_admin", Name: "Administrator", MinSalary: 50000, MaxSalary: 80000},
		{ID: "pos_trainer", Name: "Trainer", MinSalary: 60000, MaxSalary: 100000},
		{ID: "pos_cashier", Name: "Cashier", MinSalary: 40000, MaxSalary: 60000},
		{ID: "pos_tech", Name: "Technical administrator", MinSalary: 70000, MaxSalary: 120000},
		{ID: "pos_manager", Name: "Manager", MinSalary: 55000, MaxSalary: 90000},
	}
	for _, p := range positions {
		if _, err := db.Exec(
			`INSERT INTO positions (id, name, min_salary, max_salary) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.MinSalary, p.MaxSalary); err != nil {
			return err
		}
	}

	for _, m := range []*models.PaymentMethod{{ID: "cash", Name: "Cash"}, {ID: "card", Name: "Bank card"}} {
		if _, err := db.Exec(
			`INSERT INTO payment_methods (id, name) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Name); err != nil {
			return err
		}
	}

	now := time.Now()

	client1 := &models.Client{LastName: "Petrov", FirstName: "Petr", RegDate: now.AddDate(0, 0, -50), Discount: 5.0}
	client2 := &models.Client{LastName: "Vasileva", FirstName: "Anna", RegDate: now.AddDate(0, 0, -10)}
	for _, c := range []*models.Client{client1, client2} {
		if err := CreateClient(db, c); err != nil {
			return err
		}
	}

	demoStaff := []struct {
		staff    *models.Staff
		username string
		password string
		role     models.Role
	}{
		{&models.Staff{LastName: "Adminov", FirstName: "Andrey", BirthDate: date(1990, 1, 1),
			INN: "111111111111", SNILS: "11111111111", HireDate: date(2022, 1, 1),
			PositionID: strptr("pos_admin")}, "admin", "admin123", models.RoleAdmin},
		{&models.Staff{LastName: "Trenerova", FirstName: "Irina", BirthDate: date(1995, 5, 10),
			INN: "222222222222", SNILS: "22222222222", HireDate: date(2023, 3, 15),
			PositionID: strptr("pos_trainer")}, "trainer", "trainer123", models.RoleTrainer},
		{&models.Staff{LastName: "Menedzherov", FirstName: "Maxim", BirthDate: date(1988, 7, 7),
			INN: "333333333333", SNILS: "33333333333", HireDate: date(2022, 6, 1),
			PositionID: strptr("pos_manager")}, "manager", "manager123", models.RoleManager},
		{&models.Staff{LastName: "Kassirova", FirstName: "Elena", BirthDate: date(2000, 2, 20),
			INN: "444444444444", SNILS: "44444444444", HireDate: date(2023, 8, 1),
			PositionID: strptr("pos_cashier")}, "cashier", "cashier123", models.RoleCashier},
		{&models.Staff{LastName: "Tekhnikov", FirstName: "Sergey", BirthDate: date(1992, 11, 30),
			INN: "555555555555", SNILS: "55555555555", HireDate: date(2021, 10, 5),
			PositionID: strptr("pos_tech")}, "tech_admin", "tech123", models.RoleTechAdmin},
	}
	var trainerID string
	for _, d := range demoStaff {
		if err := CreateStaff(db, d.staff); err != nil {
			return err
		}
		if d.role == models.RoleTrainer {
			trainerID = d.staff.ID
		}
		if err := seedUser(db, d.username, d.password, d.role, nil, &d.staff.ID); err != nil {
			return err
		}
	}
	if err := seedUser(db, "client1", "client123", models.RoleClient, &client1.ID, nil); err != nil {
		return err
	}
	if err := seedUser(db, "client2", "client456", models.RoleClient, &client2.ID, nil); err != nil {
		return err
	}

	gym := &models.Section{ID: "gym01", Name: "Gym floor", StatusName: strptr(string(models.SubscriptionActive))}
	pool := &models.Section{ID: "pool01", Name: "Swimming pool", StatusName: strptr(string(models.SubscriptionActive))}
	for _, s := range []*models.Section{gym, pool} {
		if err := CreateSection(db, s); err != nil {
			return err
		}
	}

	subType := &models.SubscriptionType{Name: "Full access", Cost: 3000, Description: strptr("All group trainings")}
	if err := CreateSubscriptionType(db, subType); err != nil {
		return err
	}
	if err := CreateClientSubscription(db, &models.ClientSubscription{
		ClientID:           client1.ID,
		SubscriptionTypeID: subType.ID,
		StartDate:          now.AddDate(0, 0, -10),
		EndDate:            now.AddDate(0, 0, 20),
		Status:             models.SubscriptionActive,
	}); err != nil {
		return err
	}

	training := &models.Training{
		Name:            "Evening group workout",
		SectionID:       gym.ID,
		TrainerID:       &trainerID,
		StartTime:       now.Add(48*time.Hour + 18*time.Hour),
		EndTime:         now.Add(48*time.Hour + 19*time.Hour),
		IsGroup:         true,
		MaxParticipants: 10,
	}
	if err := CreateTraining(db, training, nil, []string{subType.ID}); err != nil {
		return err
	}

	log.Println("Initial data created")
	return nil
}

func seedUser(db *sql.DB, username, password string, role models.Role, clientID, staffID *string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return err
	}
	return CreateUser(db, &models.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
		ClientID: clientID,
		StaffID:  staffID,
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func strptr(s string) *string {
	return &s
}
