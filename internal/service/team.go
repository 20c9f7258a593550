package service

import (
	"errors"
	"fmt"
	"time"

	"aircraft-manufacturing-backend/internal/database/models"
	apperrors "aircraft-manufacturing-backend/internal/errors"
	"aircraft-manufacturing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and team membership.
type TeamService struct {
	repo         repository.TeamRepositoryInterface
	teamTypeRepo repository.TeamTypeRepositoryInterface
	memberRepo   repository.TeamMemberRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	validator    *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	teamTypeRepo repository.TeamTypeRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:         repo,
		teamTypeRepo: teamTypeRepo,
		memberRepo:   memberRepo,
		userRepo:     userRepo,
		validator:    validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	TeamTypeID  uuid.UUID `json:"team_type_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=64"`
	Description string    `json:"description" validate:"max=200"`
}

// UpdateTeamRequest represents the data needed to update a team. The team
// type is immutable: a wing team cannot be turned into an assembly team
// while its members' produced parts are in circulation.
type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=64"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID           uuid.UUID `json:"id"`
	TeamTypeID   uuid.UUID `json:"team_type_id"`
	TeamTypeName string    `json:"team_type_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	MemberCount  int64     `json:"member_count"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams  []TeamResponse `json:"teams"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// TeamMemberResponse represents the response data for a team membership
type TeamMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TeamID    uuid.UUID `json:"team_id"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// TeamMemberListResponse represents a paginated list of team members
type TeamMemberListResponse struct {
	Members []TeamMemberResponse `json:"members"`
	Total   int64                `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// CreateTeam creates a new team of an existing team type
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	teamType, err := s.teamTypeRepo.GetByID(req.TeamTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamTypeNotFound
		}
		return nil, fmt.Errorf("failed to get team type: %w", err)
	}

	team := &models.Team{
		TeamTypeID:  req.TeamTypeID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	team.TeamType = *teamType

	return s.toTeamResponse(team, 0), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithType(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	count, err := s.repo.GetMemberCount(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	return s.toTeamResponse(team, count), nil
}

// GetTeams retrieves teams with pagination
func (s *TeamService) GetTeams(limit, offset int) (*TeamListResponse, error) {
	teams, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		count, err := s.repo.GetMemberCount(teams[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count team members: %w", err)
		}
		responses[i] = *s.toTeamResponse(&teams[i], count)
	}

	return &TeamListResponse{
		Teams:  responses,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

// UpdateTeam updates a team's name and description
func (s *TeamService) UpdateTeam(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetWithType(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}

	if err := s.repo.Update(team); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamExists
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	count, err := s.repo.GetMemberCount(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count team members: %w", err)
	}
	return s.toTeamResponse(team, count), nil
}

// DeleteTeam deletes a team. Teams with members cannot be deleted; reassign
// the members first.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	count, err := s.repo.GetMemberCount(id)
	if err != nil {
		return fmt.Errorf("failed to count team members: %w", err)
	}
	if count > 0 {
		return apperrors.NewConflictError("team still has members")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// AddMember assigns a user to a team. A user can belong to at most one team.
func (s *TeamService) AddMember(teamID, userID uuid.UUID) (*TeamMemberResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	member := &models.TeamMember{
		UserID: userID,
		TeamID: teamID,
	}
	if err := s.memberRepo.Create(member); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrTeamMemberExists
		}
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	return &TeamMemberResponse{
		ID:        member.ID,
		UserID:    member.UserID,
		TeamID:    member.TeamID,
		Username:  user.Username,
		FullName:  user.DisplayName(),
		CreatedAt: member.CreatedAt.Format(time.RFC3339),
	}, nil
}

// RemoveMember removes a membership from a team
func (s *TeamService) RemoveMember(teamID, memberID uuid.UUID) error {
	member, err := s.memberRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if member.TeamID != teamID {
		return apperrors.ErrTeamMemberNotFound
	}

	if err := s.memberRepo.Delete(memberID); err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	return nil
}

// GetTeamMembers retrieves the members of a team with pagination
func (s *TeamService) GetTeamMembers(teamID uuid.UUID, limit, offset int) (*TeamMemberListResponse, error) {
	if _, err := s.repo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	members, total, err := s.memberRepo.GetByTeamID(teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	responses := make([]TeamMemberResponse, len(members))
	for i := range members {
		responses[i] = TeamMemberResponse{
			ID:        members[i].ID,
			UserID:    members[i].UserID,
			TeamID:    members[i].TeamID,
			Username:  members[i].User.Username,
			FullName:  members[i].User.DisplayName(),
			CreatedAt: members[i].CreatedAt.Format(time.RFC3339),
		}
	}

	return &TeamMemberListResponse{
		Members: responses,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func (s *TeamService) toTeamResponse(team *models.Team, memberCount int64) *TeamResponse {
	resp := &TeamResponse{
		ID:          team.ID,
		TeamTypeID:  team.TeamTypeID,
		Name:        team.Name,
		Description: team.Description,
		MemberCount: memberCount,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   team.UpdatedAt.Format(time.RFC3339),
	}
	if team.TeamType.Name != "" {
		resp.TeamTypeName = team.TeamType.Name
	}
	return resp
}
