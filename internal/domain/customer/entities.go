package customer

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Table: customers
type Customer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string    `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	Name       string    `gorm:"size:128;not null" json:"name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Phone      string    `gorm:"size:32" json:"phone"`
	University *string   `gorm:"size:128" json:"university"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Customer) TableName() string { return "customers" }

// Table: users. PasswordHash is a bcrypt hash and never leaves the service.
type User struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	UserID       string    `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name         string    `gorm:"size:128;not null" json:"name"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:72;not null" json:"-"`
	Role         Role      `gorm:"type:varchar(16);default:'user'" json:"role"`
	CustomerID   string    `gorm:"size:32;index" json:"customer_id"`
	Phone        string    `gorm:"size:32" json:"phone"`
	University   *string   `gorm:"size:128" json:"university"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID     string
	CustomerID string
	Role       Role
}

func (i Identity) IsAdmin() bool { return i.Role == RoleAdmin }

// Listing is a user joined with its customer profile (admin view).
type Listing struct {
	UserID     string  `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	University *string `json:"university"`
	Role       Role    `json:"role"`
	CustomerID string  `json:"customer_id"`
}
