package person

import (
	"context"

	personRepo "deptdesk/database/repository/person"
	shiftRepo "deptdesk/database/repository/shift"
	"deptdesk/models"
)

// PersonService manages the department personnel directory.
type PersonService interface {
	CreatePerson(ctx context.Context, person models.Person) (*models.Person, error)
	GetPersonByID(ctx context.Context, personID string) (*models.Person, error)
	ListPeople(ctx context.Context, filter personRepo.PersonFilter) ([]models.Person, error)
	UpdatePerson(ctx context.Context, req models.PersonUpdateRequest) (*models.Person, error)
	DeletePerson(ctx context.Context, personID string) error
}

// DefaultPersonService is the production implementation. Deleting a person
// also removes their shift records so stale shifts never reach the layout.
type DefaultPersonService struct {
	Repo   personRepo.PersonRepository
	Shifts shiftRepo.ShiftRepository
}
