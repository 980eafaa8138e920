package domain

import (
	"strings"

	apperrors "incubator/internal/platform/errors"
)

// User is the authenticated user as far as project resolution cares.
type User struct {
	ID   string
	Name string
}

// FirstName is the first word of the display name, used by the owner search.
func (u User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (u *User) Validate() error {
	if u == nil {
		return apperrors.ErrUnauthenticated
	}
	if strings.TrimSpace(u.ID) == "" || u.FirstName() == "" {
		return apperrors.Invalid("missing user id or name; log in again")
	}
	return nil
}

type Source string

const (
	SourceExplicit    Source = "explicit"
	SourceCached      Source = "cached"
	SourceOwnerSearch Source = "owner-search"
	SourceSentinel    Source = "sentinel"
)

type Resolution struct {
	ProjectID string
	Source    Source
	Warning   string
}

// FirstOwned keeps the server order and returns the first project owned by
// userID.
func FirstOwned(projects []Project, userID string) (Project, bool) {
	for _, p := range projects {
		if p.ID != "" && p.OwnedBy(userID) {
			return p, true
		}
	}
	return Project{}, false
}
