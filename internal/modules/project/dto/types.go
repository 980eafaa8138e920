package dto

type ResolveInput struct {
	ExplicitID string
	// Refresh drops the cached id before resolving.
	Refresh bool
}

type ResolveOutput struct {
	ProjectID  string
	Source     string
	Unassigned bool
	Warning    string
}

type MemberOutput struct {
	ID       string
	FullName string
	Email    string
	Role     string
}

type ProjectOutput struct {
	ID                   string
	Name                 string
	Industry             string
	About                string
	Problem              string
	Solution             string
	Idea                 string
	TargetAudience       string
	CompetitiveAdvantage string
	Motivation           string
	Status               string
	Stage                string
	CreatedAt            string
	Owners               []MemberOutput
	Members              []MemberOutput
	Supervisors          []MemberOutput
	JuryMembers          []MemberOutput
}

type ProjectListOutput struct {
	Projects []ProjectOutput
	Warnings []string
}

type SummaryOutput struct {
	ID           string
	Name         string
	MembersCount int
}

type SummaryListOutput struct {
	Projects []SummaryOutput
	Warnings []string
}

type CreateProjectInput struct {
	Name                 string
	Industry             string
	About                string
	Problem              string
	Solution             string
	Idea                 string
	TargetAudience       string
	CompetitiveAdvantage string
	Motivation           string
	Stage                string
	MemberEmails         []string
	SupervisorEmails     []string
}

// UpdateProjectInput leaves nil fields untouched.
type UpdateProjectInput struct {
	ProjectID            string
	Name                 *string
	Industry             *string
	About                *string
	Problem              *string
	Solution             *string
	Idea                 *string
	TargetAudience       *string
	CompetitiveAdvantage *string
	Motivation           *string
	Status               *string
	Stage                *string
}

type TeamInput struct {
	ProjectID string
	Relation  string
}

type TeamOutput struct {
	ProjectID string
	Relation  string
	Members   []MemberOutput
	Warnings  []string
}

type CandidatesInput struct {
	ProjectID string
	Query     string
}

type CandidatesOutput struct {
	ProjectID string
	Users     []MemberOutput
	Warnings  []string
}

type AddToTeamInput struct {
	ProjectID string
	Relation  string
	// UserIdentifier is a user id, or an email for plain members.
	UserIdentifier string
}
