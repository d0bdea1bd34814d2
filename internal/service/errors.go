package service

import (
	"fmt"

	"github.com/hackforge/hackathon-api/internal/domain"
	"github.com/hackforge/hackathon-api/internal/repository"
)

// Error kinds. Every error a service returns wraps one of these, except
// unexpected storage failures.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrValidation        = domain.ErrValidation
	ErrCapacity          = domain.ErrCapacity
	ErrConflict          = domain.ErrConflict
	ErrInvalidTransition = domain.ErrInvalidTransition
	ErrForbidden         = domain.ErrForbidden
)

var (
	ErrHackathonNotFound  = repository.ErrHackathonNotFound
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrTeamNotFound       = repository.ErrTeamNotFound
	ErrSubmissionNotFound = repository.ErrSubmissionNotFound
	ErrSponsorNotFound    = repository.ErrSponsorNotFound
	ErrPrizeNotFound      = repository.ErrPrizeNotFound
	ErrIssueNotFound      = repository.ErrIssueNotFound

	ErrTeamFull         = fmt.Errorf("%w: team already has %d members", ErrCapacity, domain.MaxTeamSize)
	ErrAlreadyInTeam    = fmt.Errorf("%w: user already belongs to a team in this hackathon", ErrConflict)
	ErrSubmissionExists = fmt.Errorf("%w: team already has a submission", ErrConflict)
	ErrInviteExists     = fmt.Errorf("%w: email already invited", ErrConflict)
	ErrInvalidJoinCode  = fmt.Errorf("%w: invalid join code", ErrForbidden)
	ErrNotOrganiser     = fmt.Errorf("%w: organiser role required", ErrForbidden)
	ErrNotTeamMember    = fmt.Errorf("%w: only the team leader or members may edit the team", ErrForbidden)
	ErrNotMember        = fmt.Errorf("%w: user is not a member of the team", ErrNotFound)
	ErrSubmissionFinal  = fmt.Errorf("%w: submission already presented", ErrInvalidTransition)
	ErrIssueResolved    = fmt.Errorf("%w: issue already resolved", ErrInvalidTransition)
	ErrIssueNotResolved = fmt.Errorf("%w: only resolved issues can be reopened", ErrInvalidTransition)
	ErrSponsorMismatch  = fmt.Errorf("%w: sponsor belongs to another hackathon", ErrValidation)
	ErrInvalidState     = fmt.Errorf("%w: unknown submission state", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("%w: unknown issue status", ErrValidation)
	ErrInvalidPinCode   = fmt.Errorf("%w: pin code must be 4 digits", ErrValidation)
	ErrStorageDisabled  = fmt.Errorf("%w: logo storage is not configured", ErrValidation)
)

func errRequired(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}

func requireOrganiser(identity domain.Identity) error {
	if !identity.IsOrganiser() {
		return ErrNotOrganiser
	}
	return nil
}
