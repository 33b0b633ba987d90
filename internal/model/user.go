package model

// Role is an authorization tier embedded in issued tokens.
type Role string

const (
	RoleNormal Role = "NORMAL"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleNormal || r == RoleAdmin
}

// User represents an account that can publish and follow.
type User struct {
	ID       string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Name     string `json:"name" gorm:"size:255;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	Role     Role   `json:"-" gorm:"size:16;not null;default:'NORMAL'"`
}

func (User) TableName() string { return "user" }

// PublicUser is the view of a user safe to return to any authenticated caller.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ToPublic strips the password and role.
func (u *User) ToPublic() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
