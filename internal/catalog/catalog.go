// Package catalog holds the built-in example queries and practice
// exercises shown next to the query box.
package catalog

type Example struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

var examples = []Example{
	{Label: "Show all users", Query: "SELECT * FROM users;"},
	{Label: "Users from Goa", Query: "SELECT * FROM users WHERE city='Goa';"},
	{Label: "Orders by Adarsh", Query: `SELECT o.*
FROM orders o
JOIN users u ON u.id = o.user_id
WHERE u.name = 'Adarsh';`},
	{Label: "Latest 3 orders", Query: "SELECT * FROM orders ORDER BY created_at DESC LIMIT 3;"},
	{Label: "Total PAID amount", Query: `SELECT SUM(amount) AS total_paid
FROM orders
WHERE status='PAID';`},
	{Label: "Orders with customer name (JOIN)", Query: `SELECT o.id, u.name, o.amount, o.status, o.created_at
FROM orders o
JOIN users u ON u.id = o.user_id
ORDER BY o.created_at DESC;`},
	{Label: "Count users per city", Query: `SELECT city, COUNT(*) AS total
FROM users
GROUP BY city;`},
}

var exercises = []string{
	"Show all users",
	"Show users from Goa",
	"Show orders where amount > 1000",
	"Show all orders by Pranjali",
	"Show total PAID amount",
	"Count users by city",
	"Show top 2 highest orders",
}

// Examples returns the examples in display order. The slice is a copy.
func Examples() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}

func Exercises() []string {
	out := make([]string, len(exercises))
	copy(out, exercises)
	return out
}

// Lookup returns the query for an example label.
func Lookup(label string) (string, bool) {
	for _, e := range examples {
		if e.Label == label {
			return e.Query, true
		}
	}
	return "", false
}
