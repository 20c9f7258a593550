package models

// Well-known team type names seeded at startup. Teams of the ASSEMBLY type
// are the only ones allowed to assemble aircraft.
const (
	TeamTypeAdmin    = "ADMIN"
	TeamTypeWing     = "WING"
	TeamTypeBody     = "BODY"
	TeamTypeTail     = "TAIL"
	TeamTypeAvionics = "AVIONICS"
	TeamTypeAssembly = "ASSEMBLY"
)

// TeamType categorizes manufacturing teams by specialization.
// Reference data: seeded once, never updated or deleted in normal operation.
type TeamType struct {
	BaseModel
	Name string `json:"name" gorm:"size:64;not null;uniqueIndex" validate:"required,max=64"`
}

// TableName returns the table name for TeamType
func (TeamType) TableName() string {
	return "team_types"
}
