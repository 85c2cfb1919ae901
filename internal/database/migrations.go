package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"sqlpractice/internal/logging"
	"sqlpractice/internal/models"
)

// PracticeTables lists the seeded tables in the order the table info panel
// shows them.
var PracticeTables = []string{"users", "orders"}

type seedUser struct {
	Name  string
	Email string
	City  string
}

type seedOrder struct {
	UserName string
	Amount   float64
	Status   string
	PlacedAt string
}

var SeedUsers = []seedUser{
	{Name: "Adarsh", Email: "adarsh@mail.com", City: "Goa"},
	{Name: "Pranjali", Email: "pranjali@mail.com", City: "Mumbai"},
	{Name: "Rahul", Email: "rahul@mail.com", City: "Pune"},
	{Name: "Amit", Email: "amit@mail.com", City: "Delhi"},
}

var SeedOrders = []seedOrder{
	{UserName: "Adarsh", Amount: 500, Status: "PAID", PlacedAt: "2026-01-10"},
	{UserName: "Adarsh", Amount: 999, Status: "PENDING", PlacedAt: "2026-01-11"},
	{UserName: "Pranjali", Amount: 1299, Status: "PAID", PlacedAt: "2026-01-11"},
	{UserName: "Rahul", Amount: 2500, Status: "CANCELLED", PlacedAt: "2026-01-12"},
	{UserName: "Amit", Amount: 799, Status: "PAID", PlacedAt: "2026-01-12"},
	{UserName: "Pranjali", Amount: 1500, Status: "PENDING", PlacedAt: "2026-01-13"},
	{UserName: "Rahul", Amount: 1800, Status: "PAID", PlacedAt: "2026-01-13"},
}

type resetStep struct {
	name string
	run  func(tx *gorm.DB) error
}

func execStep(name, stmt string) resetStep {
	return resetStep{name: name, run: func(tx *gorm.DB) error {
		return tx.Exec(stmt).Error
	}}
}

// Reset drops and recreates the practice tables and seeds them. All steps
// run in a single transaction.
func Reset(ctx context.Context, db *gorm.DB) error {
	log := logging.WithComponent("database")

	steps := []resetStep{
		execStep("drop orders", dropOrdersTable),
		execStep("drop users", dropUsersTable),
		execStep("create users", createUsersTable),
		execStep("create orders", createOrdersTable),
		{name: "seed users", run: seedUsers},
		{name: "seed orders", run: seedOrders},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, step := range steps {
			log.Debug("running reset step", "step", i+1, "of", len(steps), "name", step.name)
			if err := step.run(tx); err != nil {
				return fmt.Errorf("reset step %d (%s) failed: %w", i+1, step.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("practice database reset", "users", len(SeedUsers), "orders", len(SeedOrders))
	return nil
}

func seedUsers(tx *gorm.DB) error {
	users := make([]models.User, 0, len(SeedUsers))
	for _, u := range SeedUsers {
		email, city := u.Email, u.City
		users = append(users, models.User{Name: u.Name, Email: &email, City: &city})
	}
	return tx.Create(&users).Error
}

func seedOrders(tx *gorm.DB) error {
	var users []models.User
	if err := tx.Select("id", "name").Find(&users).Error; err != nil {
		return err
	}
	idByName := make(map[string]int64, len(users))
	for _, u := range users {
		idByName[u.Name] = u.ID
	}

	orders := make([]models.Order, 0, len(SeedOrders))
	for _, o := range SeedOrders {
		userID, ok := idByName[o.UserName]
		if !ok {
			return fmt.Errorf("seed order references unknown user %q", o.UserName)
		}
		orders = append(orders, models.Order{
			UserID:   userID,
			Amount:   o.Amount,
			Status:   o.Status,
			PlacedAt: o.PlacedAt,
		})
	}
	return tx.Create(&orders).Error
}

const dropOrdersTable = `DROP TABLE IF EXISTS orders`

const dropUsersTable = `DROP TABLE IF EXISTS users`

const createUsersTable = `
CREATE TABLE users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT,
  city TEXT
)
`

const createOrdersTable = `
CREATE TABLE orders(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  user_id INTEGER NOT NULL,
  amount REAL NOT NULL,
  status TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id)
)
`
