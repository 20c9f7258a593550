package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aircraft-manufacturing-backend/internal/config"
	"aircraft-manufacturing-backend/internal/database"
	"aircraft-manufacturing-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML data files. Catalog types
// are referenced by name so the files stay readable and re-runnable.
type TeamData struct {
	Name        string `yaml:"name"`
	TeamType    string `yaml:"team_type"`
	Description string `yaml:"description,omitempty"`
}

type UserData struct {
	Username  string `yaml:"username"`
	FirstName string `yaml:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty"`
	Email     string `yaml:"email,omitempty"`
	IsAdmin   bool   `yaml:"is_admin,omitempty"`
	TeamName  string `yaml:"team_name,omitempty"`
}

type PartTypeData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type AircraftTypeData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type PermissionData struct {
	TeamType  string `yaml:"team_type"`
	PartType  string `yaml:"part_type"`
	CanCreate bool   `yaml:"can_create"`
}

type RequirementData struct {
	AircraftType string `yaml:"aircraft_type"`
	PartType     string `yaml:"part_type"`
	Quantity     int    `yaml:"quantity"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type PartTypesFile struct {
	PartTypes []PartTypeData `yaml:"part_types"`
}

type AircraftTypesFile struct {
	AircraftTypes []AircraftTypeData `yaml:"aircraft_types"`
}

type PermissionsFile struct {
	Permissions []PermissionData `yaml:"permissions"`
}

type RequirementsFile struct {
	Requirements []RequirementData `yaml:"requirements"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(dsn, cfg.DatabaseDriver, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn, driver string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		Driver:   driver,
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	partTypes, err := loadYAMLSection(dataDir, "part_types.yaml", func(f *PartTypesFile) []PartTypeData { return f.PartTypes })
	if err != nil {
		return fmt.Errorf("failed to load part types: %w", err)
	}
	aircraftTypes, err := loadYAMLSection(dataDir, "aircraft_types.yaml", func(f *AircraftTypesFile) []AircraftTypeData { return f.AircraftTypes })
	if err != nil {
		return fmt.Errorf("failed to load aircraft types: %w", err)
	}
	teams, err := loadYAMLSection(dataDir, "teams.yaml", func(f *TeamsFile) []TeamData { return f.Teams })
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	users, err := loadYAMLSection(dataDir, "users.yaml", func(f *UsersFile) []UserData { return f.Users })
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	permissions, err := loadYAMLSection(dataDir, "permissions.yaml", func(f *PermissionsFile) []PermissionData { return f.Permissions })
	if err != nil {
		return fmt.Errorf("failed to load permissions: %w", err)
	}
	requirements, err := loadYAMLSection(dataDir, "requirements.yaml", func(f *RequirementsFile) []RequirementData { return f.Requirements })
	if err != nil {
		return fmt.Errorf("failed to load requirements: %w", err)
	}

	created, existing := 0, 0

	for _, data := range partTypes {
		was, err := createPartType(db, data)
		if err != nil {
			return err
		}
		tally(&created, &existing, was)
	}

	for _, data := range aircraftTypes {
		was, err := createAircraftType(db, data)
		if err != nil {
			return err
		}
		tally(&created, &existing, was)
	}

	teamMap := make(map[string]*models.Team)
	for _, data := range teams {
		team, was, err := createTeam(db, data)
		if err != nil {
			return err
		}
		teamMap[data.Name] = team
		tally(&created, &existing, was)
	}

	for _, data := range users {
		was, err := createUser(db, data, teamMap)
		if err != nil {
			return err
		}
		tally(&created, &existing, was)
	}

	for _, data := range permissions {
		was, err := createPermission(db, data)
		if err != nil {
			return err
		}
		tally(&created, &existing, was)
	}

	for _, data := range requirements {
		was, err := createRequirement(db, data)
		if err != nil {
			return err
		}
		tally(&created, &existing, was)
	}

	log.Printf("Done: %d rows created, %d already existed", created, existing)
	return nil
}

func tally(created, existing *int, wasCreated bool) {
	if wasCreated {
		*created++
	} else {
		*existing++
	}
}

// loadYAMLSection collects the given section from every matching YAML file
// under dataDir.
func loadYAMLSection[F any, D any](dataDir, suffix string, section func(*F) []D) ([]D, error) {
	var out []D
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, suffix) {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file F
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		out = append(out, section(&file)...)
		return nil
	})
	if os.IsNotExist(err) {
		return nil, nil
	}
	return out, err
}

func getTeamTypeByName(db *gorm.DB, name string) (*models.TeamType, error) {
	var teamType models.TeamType
	if err := db.Where("name = ?", name).First(&teamType).Error; err != nil {
		return nil, fmt.Errorf("team type %q not found (run the server with SEED_ON_STARTUP first): %w", name, err)
	}
	return &teamType, nil
}

func createPartType(db *gorm.DB, data PartTypeData) (bool, error) {
	var partType models.PartType
	if err := db.Where("name = ?", data.Name).First(&partType).Error; err != nil {
		partType = models.PartType{Name: data.Name, Description: data.Description}
		if err := db.Create(&partType).Error; err != nil {
			return false, fmt.Errorf("create part type %q: %w", data.Name, err)
		}
		return true, nil
	}
	return false, nil
}

func createAircraftType(db *gorm.DB, data AircraftTypeData) (bool, error) {
	var aircraftType models.AircraftType
	if err := db.Where("name = ?", data.Name).First(&aircraftType).Error; err != nil {
		aircraftType = models.AircraftType{Name: data.Name, Description: data.Description}
		if err := db.Create(&aircraftType).Error; err != nil {
			return false, fmt.Errorf("create aircraft type %q: %w", data.Name, err)
		}
		return true, nil
	}
	return false, nil
}

func createTeam(db *gorm.DB, data TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", data.Name).First(&team).Error; err == nil {
		return &team, false, nil
	}

	teamType, err := getTeamTypeByName(db, data.TeamType)
	if err != nil {
		return nil, false, err
	}

	team = models.Team{
		TeamTypeID:  teamType.ID,
		Name:        data.Name,
		Description: data.Description,
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("create team %q: %w", data.Name, err)
	}
	return &team, true, nil
}

func createUser(db *gorm.DB, data UserData, teamMap map[string]*models.Team) (bool, error) {
	var user models.User
	if err := db.Where("username = ?", data.Username).First(&user).Error; err == nil {
		return false, nil
	}

	user = models.User{
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		IsAdmin:   data.IsAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		return false, fmt.Errorf("create user %q: %w", data.Username, err)
	}

	if data.TeamName != "" {
		team, ok := teamMap[data.TeamName]
		if !ok {
			var found models.Team
			if err := db.Where("name = ?", data.TeamName).First(&found).Error; err != nil {
				return false, fmt.Errorf("user %q references unknown team %q", data.Username, data.TeamName)
			}
			team = &found
		}
		member := models.TeamMember{UserID: user.ID, TeamID: team.ID}
		if err := db.Create(&member).Error; err != nil {
			return false, fmt.Errorf("add user %q to team %q: %w", data.Username, data.TeamName, err)
		}
	}
	return true, nil
}

func createPermission(db *gorm.DB, data PermissionData) (bool, error) {
	teamType, err := getTeamTypeByName(db, data.TeamType)
	if err != nil {
		return false, err
	}

	var partType models.PartType
	if err := db.Where("name = ?", data.PartType).First(&partType).Error; err != nil {
		return false, fmt.Errorf("permission references unknown part type %q", data.PartType)
	}

	var existing models.TeamPartPermission
	err = db.Where("team_type_id = ? AND part_type_id = ?", teamType.ID, partType.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}

	perm := models.TeamPartPermission{
		TeamTypeID: teamType.ID,
		PartTypeID: partType.ID,
		CanCreate:  data.CanCreate,
	}
	if err := db.Create(&perm).Error; err != nil {
		return false, fmt.Errorf("create permission %s/%s: %w", data.TeamType, data.PartType, err)
	}
	return true, nil
}

func createRequirement(db *gorm.DB, data RequirementData) (bool, error) {
	var aircraftType models.AircraftType
	if err := db.Where("name = ?", data.AircraftType).First(&aircraftType).Error; err != nil {
		return false, fmt.Errorf("requirement references unknown aircraft type %q", data.AircraftType)
	}

	var partType models.PartType
	if err := db.Where("name = ?", data.PartType).First(&partType).Error; err != nil {
		return false, fmt.Errorf("requirement references unknown part type %q", data.PartType)
	}

	var existing models.AircraftPartRequirement
	err := db.Where("aircraft_type_id = ? AND part_type_id = ?", aircraftType.ID, partType.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}

	req := models.AircraftPartRequirement{
		AircraftTypeID: aircraftType.ID,
		PartTypeID:     partType.ID,
		Quantity:       data.Quantity,
	}
	if err := db.Create(&req).Error; err != nil {
		return false, fmt.Errorf("create requirement %s/%s: %w", data.AircraftType, data.PartType, err)
	}
	return true, nil
}
