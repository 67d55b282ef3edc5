package models

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return true
	}
	return false
}

// CanManageStock reports whether the role may mutate products, stock
// transactions and low-stock notifications.
func (r Role) CanManageStock() bool {
	return r == RoleAdmin
}

// CanManageUsers reports whether the role may list and delete other users.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PhoneNumber  *string   `gorm:"unique" json:"phone_number,omitempty"`
	Role         Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Orders       []Order   `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
