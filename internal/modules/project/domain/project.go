package domain

import (
	"strings"

	apperrors "incubator/internal/platform/errors"
)

type Member struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
	Year      string
}

func (m Member) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// CandidateLimit caps the member picker.
const CandidateLimit = 5

// Matches reports whether query occurs in the email, first or last name,
// ignoring case. A blank query matches everyone.
func (m Member) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range []string{m.Email, m.FirstName, m.LastName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// Candidates lists users that can still be invited: not already in members,
// matching query, at most limit of them in directory order.
func Candidates(users, members []Member, query string, limit int) []Member {
	taken := make(map[string]struct{}, len(members))
	for _, m := range members {
		taken[m.ID] = struct{}{}
	}
	out := []Member{}
	for _, u := range users {
		if len(out) == limit {
			break
		}
		if _, ok := taken[u.ID]; ok || !u.Matches(query) {
			continue
		}
		out = append(out, u)
	}
	return out
}

type Project struct {
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
	TeamID               string
	Owners               []Member
	Members              []Member
	Supervisors          []Member
	JuryMembers          []Member
}

// OwnedBy reports whether userID is among the project owners.
func (p Project) OwnedBy(userID string) bool {
	for _, owner := range p.Owners {
		if owner.ID == userID {
			return true
		}
	}
	return false
}

// Summary is the short form returned by the unsupervised-projects listing.
type Summary struct {
	ID           string
	Name         string
	MembersCount int
}

type Draft struct {
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

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return apperrors.Invalid("project name is required")
	}
	for _, email := range append(append([]string{}, d.MemberEmails...), d.SupervisorEmails...) {
		if !strings.Contains(email, "@") {
			return apperrors.Invalid("invalid email %q", email)
		}
	}
	return nil
}

// Patch leaves nil fields untouched.
type Patch struct {
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

func (p Patch) Empty() bool {
	for _, f := range p.fields() {
		if f != nil {
			return false
		}
	}
	return true
}

func (p Patch) fields() []*string {
	return []*string{p.Name, p.Industry, p.About, p.Problem, p.Solution, p.Idea, p.TargetAudience, p.CompetitiveAdvantage, p.Motivation, p.Status, p.Stage}
}

// Relation selects one team listing. The wire names are the server's.
type Relation string

const (
	RelationMembers     Relation = "members"
	RelationSupervisors Relation = "encadrants"
	RelationJury        Relation = "juryMembers"
)

func ParseRelation(raw string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "members", "member":
		return RelationMembers, nil
	case "encadrants", "encadrant", "supervisors", "supervisor", "mentors":
		return RelationSupervisors, nil
	case "jurymembers", "jury", "jury-members":
		return RelationJury, nil
	default:
		return "", apperrors.Invalid("unknown team relation %q", raw)
	}
}
