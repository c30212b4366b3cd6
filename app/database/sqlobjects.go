package database

import (
	"database/sql"
	"log"
)

// EnsureSQLObjects installs the database-side collaborators: the staff
// age-validation trigger, the booking-capacity trigger and the dashboard
// views. Some deployment targets cannot run triggers, so failures are
// logged and swallowed; the same invariants are re-checked at the
// application layer before every write.
func EnsureSQLObjects(db *sql.DB) {
	objects := []struct {
		name string
		stmt string
	}{
		{"validate_staff_age function", `
			CREATE OR REPLACE FUNCTION validate_staff_age() RETURNS TRIGGER AS $$
			BEGIN
				IF NEW.birth_date + INTERVAL '18 years' > NEW.hire_date THEN
					RAISE EXCEPTION 'validate_staff_age: staff must be at least 18 years old at hire date';
				END IF;
				RETURN NEW;
			END;
			$$ LANGUAGE plpgsql`},
		{"staff_age_check trigger", `
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'staff_age_check') THEN
					CREATE TRIGGER staff_age_check BEFORE INSERT OR UPDATE ON staff
					FOR EACH ROW EXECUTE FUNCTION validate_staff_age();
				END IF;
			END $$`},
		{"check_training_capacity function", `
			CREATE OR REPLACE FUNCTION check_training_capacity() RETURNS TRIGGER AS $$
			DECLARE
				confirmed INTEGER;
				capacity INTEGER;
			BEGIN
				SELECT max_participants INTO capacity FROM trainings WHERE id = NEW.training_id;
				SELECT COUNT(*) INTO confirmed FROM training_participants
					WHERE training_id = NEW.training_id AND status_name = 'confirmed';
				IF confirmed >= capacity THEN
					RAISE EXCEPTION 'check_training_capacity: training is full';
				END IF;
				RETURN NEW;
			END;
			$$ LANGUAGE plpgsql`},
		{"training_capacity_check trigger", `
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'training_capacity_check') THEN
					CREATE TRIGGER training_capacity_check BEFORE INSERT ON training_participants
					FOR EACH ROW EXECUTE FUNCTION check_training_capacity();
				END IF;
			END $$`},
		{"active_subscriptions view", `
			CREATE OR REPLACE VIEW v_active_subscriptions AS
			SELECT cs.id, cs.client_id, cs.subscription_type_id, cs.start_date, cs.end_date,
			       c.last_name, c.first_name, st.name AS type_name, st.cost
			FROM client_subscriptions cs
			JOIN clients c ON c.id = cs.client_id
			JOIN subscription_types st ON st.id = cs.subscription_type_id
			WHERE cs.status_name = 'active' AND cs.end_date >= CURRENT_DATE`},
		{"training_load view", `
			CREATE OR REPLACE VIEW v_training_load AS
			SELECT t.id, t.name, t.start_time, t.max_participants,
			       COUNT(tp.client_id) FILTER (WHERE tp.status_name = 'confirmed') AS confirmed_count
			FROM trainings t
			LEFT JOIN training_participants tp ON tp.training_id = t.id
			GROUP BY t.id`},
	}

	for _, obj := range objects {
		if _, err := db.Exec(obj.stmt); err != nil {
			log.Printf("Skipping %s (deployment target may not support it): %v", obj.name, err)
		}
	}
}
