package models

// DefaultTeamTypes lists the team types created by the seeder.
var DefaultTeamTypes = []string{
	TeamTypeAdmin,
	TeamTypeWing,
	TeamTypeBody,
	TeamTypeTail,
	TeamTypeAvionics,
	TeamTypeAssembly,
}

// DefaultPartTypes lists the part types created by the seeder.
var DefaultPartTypes = []string{
	PartTypeWing,
	PartTypeBody,
	PartTypeTail,
	PartTypeAvionics,
}

// DefaultAircraftTypes lists the aircraft types created by the seeder.
var DefaultAircraftTypes = []string{
	AircraftTypeTB2,
	AircraftTypeTB3,
	AircraftTypeAkinci,
	AircraftTypeKizilelma,
}

// DefaultPartPermissions maps each manufacturing team type to the part types
// it may produce. ADMIN and ASSEMBLY get no part permissions: assembly teams
// consume parts, they do not make them.
var DefaultPartPermissions = map[string][]string{
	TeamTypeWing:     {PartTypeWing},
	TeamTypeBody:     {PartTypeBody},
	TeamTypeTail:     {PartTypeTail},
	TeamTypeAvionics: {PartTypeAvionics},
}

// DefaultAircraftRequirements is the per-aircraft-type part quantity table.
var DefaultAircraftRequirements = map[string]map[string]int{
	AircraftTypeTB2: {
		PartTypeWing:     2,
		PartTypeBody:     1,
		PartTypeTail:     1,
		PartTypeAvionics: 1,
	},
	AircraftTypeTB3: {
		PartTypeWing:     2,
		PartTypeBody:     1,
		PartTypeTail:     1,
		PartTypeAvionics: 2,
	},
	AircraftTypeAkinci: {
		PartTypeWing:     2,
		PartTypeBody:     1,
		PartTypeTail:     2,
		PartTypeAvionics: 2,
	},
	AircraftTypeKizilelma: {
		PartTypeWing:     4,
		PartTypeBody:     1,
		PartTypeTail:     1,
		PartTypeAvionics: 2,
	},
}
