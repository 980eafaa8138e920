package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleMember     Role = "MEMBER"
)

func ParseRole(raw string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(raw)))
}

type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      Role
	ProjectID string
	ExpiresAt time.Time
}

func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Expired is false for tokens without an expiry.
func (u User) Expired(now time.Time) bool {
	return !u.ExpiresAt.IsZero() && !now.Before(u.ExpiresAt)
}

type Destination string

const (
	DestinationAdminProjects  Destination = "admin-projects"
	DestinationMentorProjects Destination = "mentor-projects"
	DestinationProgress       Destination = "progress"
	DestinationStartupPrompt  Destination = "startup-prompt"
)

// Landing picks the first screen after login. Members without a project see
// the startup prompt once.
func Landing(u User, hasProject, promptSeen bool) Destination {
	switch u.Role {
	case RoleAdmin:
		return DestinationAdminProjects
	case RoleSupervisor:
		return DestinationMentorProjects
	}
	if hasProject || strings.TrimSpace(u.ProjectID) != "" || promptSeen {
		return DestinationProgress
	}
	return DestinationStartupPrompt
}
