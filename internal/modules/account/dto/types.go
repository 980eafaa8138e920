package dto

import "time"

type LoginInput struct {
	Token string
}

type UserOutput struct {
	ID        string
	Name      string
	FirstName string
	LastName  string
	Email     string
	Role      string
	ProjectID string
	ExpiresAt time.Time
}

type LandingOutput struct {
	User        UserOutput
	Destination string
}
