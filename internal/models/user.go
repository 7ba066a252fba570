package models

// User represents a registered customer or an administrator.
type User struct {
	BaseModel
	Name         string  `json:"name"`
	Email        string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash string  `json:"-"`
	Role         string  `gorm:"default:customer" json:"role"`
	Orders       []Order `json:"orders,omitempty"`
}

// IsAdmin reports whether the user may manage catalog data.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
