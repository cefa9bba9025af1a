package person

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	personRepo "deptdesk/database/repository/person"
	"deptdesk/models"
	"deptdesk/utils"
)

func validRole(role string) bool {
	switch role {
	case models.RoleFaculty, models.RoleStaff, models.RoleAdjunct, models.RoleStudent:
		return true
	}
	return false
}

func (s *DefaultPersonService) CreatePerson(ctx context.Context, person models.Person) (*models.Person, error) {
	if person.Name == "" {
		return nil, fmt.Errorf("person name is required")
	}
	if !validRole(person.Role) {
		return nil, fmt.Errorf("unknown role %q", person.Role)
	}

	id, err := s.Repo.Create(ctx, person)
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}
	person.ID = id
	return &person, nil
}

func (s *DefaultPersonService) GetPersonByID(ctx context.Context, personID string) (*models.Person, error) {
	return s.Repo.GetByID(ctx, personID)
}

func (s *DefaultPersonService) ListPeople(ctx context.Context, filter personRepo.PersonFilter) ([]models.Person, error) {
	if filter.Role != "" && !validRole(filter.Role) {
		return nil, fmt.Errorf("unknown role %q", filter.Role)
	}
	return s.Repo.List(ctx, filter)
}

func (s *DefaultPersonService) UpdatePerson(ctx context.Context, req models.PersonUpdateRequest) (*models.Person, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Role != nil {
		if !validRole(*req.Role) {
			return nil, fmt.Errorf("unknown role %q", *req.Role)
		}
		updates["role"] = *req.Role
	}
	if req.JobTitle != nil {
		updates["jobTitle"] = *req.JobTitle
	}
	if req.Buildings != nil {
		updates["buildings"] = *req.Buildings
	}
	if req.Office != nil {
		updates["office"] = *req.Office
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	return s.Repo.Update(ctx, req.ID, updates)
}

func (s *DefaultPersonService) DeletePerson(ctx context.Context, personID string) error {
	logger := utils.GetLogger()

	if err := s.Repo.DeleteByID(ctx, personID); err != nil {
		return err
	}
	if s.Shifts != nil {
		deleted, err := s.Shifts.DeleteByOwnerID(ctx, personID)
		if err != nil {
			logger.Warn("person deleted but shift cleanup failed",
				zap.String("personId", personID), zap.Error(err))
			return nil
		}
		if deleted > 0 {
			logger.Info("removed shifts for deleted person",
				zap.String("personId", personID), zap.Int64("count", deleted))
		}
	}
	return nil
}
