package dao

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hackforge/hackathon-api/internal/domain"
)

const mysqlDuplicateEntry = 1062

var (
	ErrDuplicate = fmt.Errorf("%w: duplicate record", domain.ErrConflict)

	ErrHackathonNotFound  = fmt.Errorf("%w: hackathon", domain.ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("%w: user", domain.ErrNotFound)
	ErrTeamNotFound       = fmt.Errorf("%w: team", domain.ErrNotFound)
	ErrSubmissionNotFound = fmt.Errorf("%w: submission", domain.ErrNotFound)
	ErrSponsorNotFound    = fmt.Errorf("%w: sponsor", domain.ErrNotFound)
	ErrInviteNotFound     = fmt.Errorf("%w: sponsor invite", domain.ErrNotFound)
	ErrPrizeNotFound      = fmt.Errorf("%w: prize", domain.ErrNotFound)
	ErrIssueNotFound      = fmt.Errorf("%w: issue", domain.ErrNotFound)
	ErrMemberNotFound     = fmt.Errorf("%w: team member", domain.ErrNotFound)
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}

	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}

// translate maps driver errors onto the package sentinels.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isUniqueViolation(err):
		return ErrDuplicate
	}
	return err
}
