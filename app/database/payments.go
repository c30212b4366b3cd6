package database

import (
	"database/sql"
	"time"

	"github.com/YazevStas/db-project/app/models"
	"github.com/google/uuid"
)

// CreatePayment records a payment for a subscription. Payments are
// immutable: there is no update or delete path, and the unique constraint
// on client_subscription_id rejects a second payment.
func CreatePayment(db *sql.DB, p *models.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	query := `INSERT INTO payments (id, client_subscription_id, amount, date, method_id)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, p.ID, p.ClientSubscriptionID, p.Amount, p.Date, p.MethodID)
	return TranslateError(err)
}

// GetRecentPayments lists the latest payments with payer and method names,
// for the cashier dashboard.
func GetRecentPayments(db *sql.DB, limit int) ([]*models.Payment, error) {
	query := `SELECT p.id, p.client_subscription_id, p.amount, p.date, p.method_id,
			  pm.name, c.last_name, c.first_name
			  FROM payments p
			  JOIN payment_methods pm ON pm.id = p.method_id
			  JOIN client_subscriptions cs ON cs.id = p.client_subscription_id
			  JOIN clients c ON c.id = cs.client_id
			  ORDER BY p.date DESC LIMIT $1`
	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{
			Method:             &models.PaymentMethod{},
			ClientSubscription: &models.ClientSubscription{Client: &models.Client{}},
		}
		err := rows.Scan(&p.ID, &p.ClientSubscriptionID, &p.Amount, &p.Date, &p.MethodID,
			&p.Method.Name, &p.ClientSubscription.Client.LastName,
			&p.ClientSubscription.Client.FirstName)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetPaymentMethods(db *sql.DB) ([]*models.PaymentMethod, error) {
	rows, err := db.Query(`SELECT id, name FROM payment_methods ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []*models.PaymentMethod
	for rows.Next() {
		m := &models.PaymentMethod{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	return methods, rows.Err()
}
