package models

// User represents an account that can log in and, when assigned to a team,
// produce parts or assemble aircraft through its TeamMember row.
type User struct {
	BaseModel
	Username  string `json:"username" gorm:"size:64;not null;uniqueIndex" validate:"required,max=64"`
	FirstName string `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName  string `json:"last_name" gorm:"size:100" validate:"max=100"`
	Email     string `json:"email" gorm:"size:255" validate:"omitempty,email,max=255"`
	IsAdmin   bool   `json:"is_admin" gorm:"default:false"`

	// Relationships
	TeamMember *TeamMember `json:"team_member,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// DisplayName returns the best available human-readable name for the user.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}
