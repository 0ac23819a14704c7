package model

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleEmployee UserRole = "Employee"
)

// swagger:model User
type User struct {
	Base
	Username   string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email      string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password   string   `gorm:"size:100;not null" json:"-"`
	FirstName  string   `gorm:"size:100" json:"firstName"`
	LastName   string   `gorm:"size:100" json:"lastName"`
	Role       UserRole `gorm:"size:20;default:'Employee'" json:"role"`
	Department string   `gorm:"size:100" json:"department"`
	IsActive   bool     `gorm:"default:true" json:"isActive"`
}

func (User) TableName() string {
	return "users"
}
