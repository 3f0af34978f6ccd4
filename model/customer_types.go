package model

// Customer is keyed in practice by Phone; lookups by phone decide create or reuse.
type Customer struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Phone      string `db:"phone" json:"phone"`
	Email      string `db:"email" json:"email,omitempty"`
	Address    string `db:"address" json:"address"`
	IsVerified bool   `db:"is_verified" json:"is_verified"`
	Source     string `db:"source" json:"source"`
	CreatedAt  string `db:"created_at" json:"created_at"`
}
