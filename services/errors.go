package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation and conflict errors surfaced by the services. Hooks map these
// onto HTTP statuses; anything else is treated as an internal failure.
var (
	ErrNameRequired    = errors.New("name is required")
	ErrContentRequired = errors.New("content is required")
	ErrEmailTaken      = errors.New("user already exists")
	ErrDuplicateMember = errors.New("user is already a member of this organization")
	ErrMembersRequired = errors.New("at least one member is required")
)

// InvalidMemberIDsError reports member ids that do not belong to the
// organization a chat room is being created or updated in
type InvalidMemberIDsError struct {
	IDs []uint64
}

func (e *InvalidMemberIDsError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatUint(id, 10)
	}
	return fmt.Sprintf("one or more member IDs are invalid: %s", strings.Join(ids, ", "))
}
