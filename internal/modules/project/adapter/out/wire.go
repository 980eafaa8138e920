package out

import "incubator/internal/modules/project/domain"

type memberWire struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Year      string `json:"Year"`
}

func (w memberWire) toDomain() domain.Member {
	return domain.Member{ID: w.ID, FirstName: w.FirstName, LastName: w.LastName, Email: w.Email, Role: w.Role, Year: w.Year}
}

func membersToDomain(wires []memberWire) []domain.Member {
	out := make([]domain.Member, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}
	return out
}

type projectWire struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Industry             string       `json:"industry"`
	About                string       `json:"about"`
	Problem              string       `json:"problem"`
	Solution             string       `json:"solution"`
	Idea                 string       `json:"idea"`
	TargetAudience       string       `json:"targetAudience"`
	CompetitiveAdvantage string       `json:"competitiveAdvantage"`
	Motivation           string       `json:"motivation"`
	Status               string       `json:"status"`
	Stage                string       `json:"stage"`
	CreatedAt            string       `json:"createdAt"`
	TeamID               string       `json:"teamId"`
	Owners               []memberWire `json:"owners"`
	Members              []memberWire `json:"members"`
	Encadrants           []memberWire `json:"encadrants"`
	JuryMembers          []memberWire `json:"juryMembers"`
}

func (w projectWire) toDomain() domain.Project {
	return domain.Project{
		ID:                   w.ID,
		Name:                 w.Name,
		Industry:             w.Industry,
		About:                w.About,
		Problem:              w.Problem,
		Solution:             w.Solution,
		Idea:                 w.Idea,
		TargetAudience:       w.TargetAudience,
		CompetitiveAdvantage: w.CompetitiveAdvantage,
		Motivation:           w.Motivation,
		Status:               w.Status,
		Stage:                w.Stage,
		CreatedAt:            w.CreatedAt,
		TeamID:               w.TeamID,
		Owners:               membersToDomain(w.Owners),
		Members:              membersToDomain(w.Members),
		Supervisors:          membersToDomain(w.Encadrants),
		JuryMembers:          membersToDomain(w.JuryMembers),
	}
}

type summaryWire struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MembersCount int    `json:"membersCount"`
}

type draftWire struct {
	Name                 string   `json:"name"`
	Industry             string   `json:"industry"`
	About                string   `json:"about"`
	Problem              string   `json:"problem"`
	Solution             string   `json:"solution"`
	Idea                 string   `json:"idea"`
	TargetAudience       string   `json:"targetAudience"`
	CompetitiveAdvantage string   `json:"competitiveAdvantage"`
	Motivation           string   `json:"motivation"`
	Stage                string   `json:"stage"`
	MemberEmails         []string `json:"memberEmails"`
	EncadrantEmails      []string `json:"encadrantEmails"`
}

func toDraftWire(d domain.Draft) draftWire {
	w := draftWire{
		Name:                 d.Name,
		Industry:             d.Industry,
		About:                d.About,
		Problem:              d.Problem,
		Solution:             d.Solution,
		Idea:                 d.Idea,
		TargetAudience:       d.TargetAudience,
		CompetitiveAdvantage: d.CompetitiveAdvantage,
		Motivation:           d.Motivation,
		Stage:                d.Stage,
		MemberEmails:         d.MemberEmails,
		EncadrantEmails:      d.SupervisorEmails,
	}
	if w.MemberEmails == nil {
		w.MemberEmails = []string{}
	}
	if w.EncadrantEmails == nil {
		w.EncadrantEmails = []string{}
	}
	return w
}

func toPatchWire(p domain.Patch) map[string]string {
	body := map[string]string{}
	set := func(key string, v *string) {
		if v != nil {
			body[key] = *v
		}
	}
	set("name", p.Name)
	set("industry", p.Industry)
	set("about", p.About)
	set("problem", p.Problem)
	set("solution", p.Solution)
	set("idea", p.Idea)
	set("targetAudience", p.TargetAudience)
	set("competitiveAdvantage", p.CompetitiveAdvantage)
	set("motivation", p.Motivation)
	set("status", p.Status)
	set("stage", p.Stage)
	return body
}

type addMemberWire struct {
	ProjectID      string `json:"projectId"`
	UserIdentifier string `json:"userIdentifier"`
}
