package service

import (
	"errors"
	"fmt"

	"aircraft-manufacturing-backend/internal/database/models"
	"aircraft-manufacturing-backend/internal/logger"
	"aircraft-manufacturing-backend/internal/repository"

	"gorm.io/gorm"
)

// defaultUser describes one seeded account.
type defaultUser struct {
	Username  string
	FirstName string
	LastName  string
	IsAdmin   bool
}

// defaultTeamUsers maps each seeded team type to its starter accounts. The
// factory ships with two operators per manufacturing team and one
// administrator.
var defaultTeamUsers = map[string][]defaultUser{
	models.TeamTypeAdmin: {
		{Username: "admin", FirstName: "Burak", LastName: "Ketmen", IsAdmin: true},
	},
	models.TeamTypeWing: {
		{Username: "wing-1", FirstName: "Ahmet", LastName: "Yılmaz"},
		{Username: "wing-2", FirstName: "Mehmet", LastName: "Demir"},
	},
	models.TeamTypeTail: {
		{Username: "tail-1", FirstName: "Ayşe", LastName: "Kaya"},
		{Username: "tail-2", FirstName: "Fatma", LastName: "Çelik"},
	},
	models.TeamTypeBody: {
		{Username: "body-1", FirstName: "Mustafa", LastName: "Yıldız"},
		{Username: "body-2", FirstName: "Ali", LastName: "Şahin"},
	},
	models.TeamTypeAvionics: {
		{Username: "avionics-1", FirstName: "Zeynep", LastName: "Arslan"},
		{Username: "avionics-2", FirstName: "Elif", LastName: "Öztürk"},
	},
	models.TeamTypeAssembly: {
		{Username: "assembly-1", FirstName: "Can", LastName: "Koç"},
		{Username: "assembly-2", FirstName: "Mert", LastName: "Aydın"},
	},
}

// SeedService populates reference data on startup: team types, part types,
// aircraft types, the permission matrix, the requirement registry, one team
// per team type and the starter accounts. Every step is a get-or-create, so
// running the seeder against an already seeded database is a no-op.
type SeedService struct {
	teamTypeRepo    repository.TeamTypeRepositoryInterface
	teamRepo        repository.TeamRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	memberRepo      repository.TeamMemberRepositoryInterface
	partTypeRepo    repository.PartTypeRepositoryInterface
	acTypeRepo      repository.AircraftTypeRepositoryInterface
	permissionRepo  repository.PermissionRepositoryInterface
	requirementRepo repository.RequirementRepositoryInterface
	log             *logger.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	teamTypeRepo repository.TeamTypeRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	partTypeRepo repository.PartTypeRepositoryInterface,
	acTypeRepo repository.AircraftTypeRepositoryInterface,
	permissionRepo repository.PermissionRepositoryInterface,
	requirementRepo repository.RequirementRepositoryInterface,
	log *logger.Logger,
) *SeedService {
	return &SeedService{
		teamTypeRepo:    teamTypeRepo,
		teamRepo:        teamRepo,
		userRepo:        userRepo,
		memberRepo:      memberRepo,
		partTypeRepo:    partTypeRepo,
		acTypeRepo:      acTypeRepo,
		permissionRepo:  permissionRepo,
		requirementRepo: requirementRepo,
		log:             log,
	}
}

// Seed creates all default data. Safe to call on every startup.
func (s *SeedService) Seed() error {
	if err := s.seedTeamTypes(); err != nil {
		return err
	}
	if err := s.seedPartTypes(); err != nil {
		return err
	}
	if err := s.seedAircraftTypes(); err != nil {
		return err
	}
	if err := s.seedPermissions(); err != nil {
		return err
	}
	if err := s.seedRequirements(); err != nil {
		return err
	}
	if err := s.seedTeams(); err != nil {
		return err
	}
	return s.seedUsers()
}

func (s *SeedService) seedTeamTypes() error {
	for _, name := range models.DefaultTeamTypes {
		_, err := s.teamTypeRepo.GetByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up team type %s: %w", name, err)
		}
		if err := s.teamTypeRepo.Create(&models.TeamType{Name: name}); err != nil {
			return fmt.Errorf("failed to seed team type %s: %w", name, err)
		}
		s.log.WithField("team_type", name).Info("team type created")
	}
	return nil
}

func (s *SeedService) seedPartTypes() error {
	for _, name := range models.DefaultPartTypes {
		_, err := s.partTypeRepo.GetByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up part type %s: %w", name, err)
		}
		if err := s.partTypeRepo.Create(&models.PartType{Name: name}); err != nil {
			return fmt.Errorf("failed to seed part type %s: %w", name, err)
		}
		s.log.WithField("part_type", name).Info("part type created")
	}
	return nil
}

func (s *SeedService) seedAircraftTypes() error {
	for _, name := range models.DefaultAircraftTypes {
		_, err := s.acTypeRepo.GetByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up aircraft type %s: %w", name, err)
		}
		if err := s.acTypeRepo.Create(&models.AircraftType{Name: name}); err != nil {
			return fmt.Errorf("failed to seed aircraft type %s: %w", name, err)
		}
		s.log.WithField("aircraft_type", name).Info("aircraft type created")
	}
	return nil
}

func (s *SeedService) seedPermissions() error {
	for teamTypeName, partTypeNames := range models.DefaultPartPermissions {
		teamType, err := s.teamTypeRepo.GetByName(teamTypeName)
		if err != nil {
			return fmt.Errorf("failed to look up team type %s: %w", teamTypeName, err)
		}
		for _, partTypeName := range partTypeNames {
			partType, err := s.partTypeRepo.GetByName(partTypeName)
			if err != nil {
				return fmt.Errorf("failed to look up part type %s: %w", partTypeName, err)
			}

			_, err = s.permissionRepo.GetByPair(teamType.ID, partType.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up permission %s/%s: %w", teamTypeName, partTypeName, err)
			}

			permission := &models.TeamPartPermission{
				TeamTypeID: teamType.ID,
				PartTypeID: partType.ID,
				CanCreate:  true,
			}
			if err := s.permissionRepo.Create(permission); err != nil {
				return fmt.Errorf("failed to seed permission %s/%s: %w", teamTypeName, partTypeName, err)
			}
			s.log.WithFields(map[string]interface{}{
				"team_type": teamTypeName,
				"part_type": partTypeName,
			}).Info("part permission created")
		}
	}
	return nil
}

func (s *SeedService) seedRequirements() error {
	for acTypeName, quantities := range models.DefaultAircraftRequirements {
		acType, err := s.acTypeRepo.GetByName(acTypeName)
		if err != nil {
			return fmt.Errorf("failed to look up aircraft type %s: %w", acTypeName, err)
		}
		for partTypeName, quantity := range quantities {
			partType, err := s.partTypeRepo.GetByName(partTypeName)
			if err != nil {
				return fmt.Errorf("failed to look up part type %s: %w", partTypeName, err)
			}

			_, err = s.requirementRepo.GetByPair(acType.ID, partType.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up requirement %s/%s: %w", acTypeName, partTypeName, err)
			}

			requirement := &models.AircraftPartRequirement{
				AircraftTypeID: acType.ID,
				PartTypeID:     partType.ID,
				Quantity:       quantity,
			}
			if err := s.requirementRepo.Create(requirement); err != nil {
				return fmt.Errorf("failed to seed requirement %s/%s: %w", acTypeName, partTypeName, err)
			}
			s.log.WithFields(map[string]interface{}{
				"aircraft_type": acTypeName,
				"part_type":     partTypeName,
				"quantity":      quantity,
			}).Info("part requirement created")
		}
	}
	return nil
}

// seedTeams creates one default team per team type, named "<TYPE> Team".
func (s *SeedService) seedTeams() error {
	teamTypes, err := s.teamTypeRepo.GetAll()
	if err != nil {
		return fmt.Errorf("failed to list team types: %w", err)
	}
	for _, teamType := range teamTypes {
		name := teamType.Name + " Team"
		_, err := s.teamRepo.GetByName(name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up team %s: %w", name, err)
		}

		team := &models.Team{
			TeamTypeID:  teamType.ID,
			Name:        name,
			Description: "Team for " + teamType.Name,
		}
		if err := s.teamRepo.Create(team); err != nil {
			return fmt.Errorf("failed to seed team %s: %w", name, err)
		}
		s.log.WithField("team", name).Info("team created")
	}
	return nil
}

func (s *SeedService) seedUsers() error {
	for teamTypeName, users := range defaultTeamUsers {
		team, err := s.teamRepo.GetByName(teamTypeName + " Team")
		if err != nil {
			return fmt.Errorf("failed to look up team for %s: %w", teamTypeName, err)
		}

		for _, du := range users {
			_, err := s.userRepo.GetByUsername(du.Username)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to look up user %s: %w", du.Username, err)
			}

			user := &models.User{
				Username:  du.Username,
				FirstName: du.FirstName,
				LastName:  du.LastName,
				IsAdmin:   du.IsAdmin,
			}
			if err := s.userRepo.Create(user); err != nil {
				return fmt.Errorf("failed to seed user %s: %w", du.Username, err)
			}
			member := &models.TeamMember{
				UserID: user.ID,
				TeamID: team.ID,
			}
			if err := s.memberRepo.Create(member); err != nil {
				return fmt.Errorf("failed to seed membership for %s: %w", du.Username, err)
			}
			s.log.WithFields(map[string]interface{}{
				"username": du.Username,
				"team":     team.Name,
			}).Info("user created")
		}
	}
	return nil
}
