package models

// Default part type names seeded at startup.
const (
	PartTypeWing     = "WING"
	PartTypeBody     = "BODY"
	PartTypeTail     = "TAIL"
	PartTypeAvionics = "AVIONICS"
)

// PartType is reference data describing a kind of manufacturable part.
type PartType struct {
	BaseModel
	Name        string `json:"name" gorm:"size:64;not null;uniqueIndex" validate:"required,max=64"`
	Description string `json:"description" gorm:"size:200" validate:"max=200"`
}

// TableName returns the table name for PartType
func (PartType) TableName() string {
	return "part_types"
}
