package out

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"incubator/internal/modules/progress/domain"
)

// flexString accepts a JSON string, number or null. Session module values
// arrive in all three forms depending on how the row was written.
type flexString string

func (f *flexString) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*f = ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			// Booleans and objects carry no percentage.
			*f = ""
			return nil
		}
		*f = flexString(n.String())
	}
	return nil
}

type moduleWire struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Percentage flexString `json:"percentage"`
	ProjectID  string     `json:"projectId"`
	UpdatedAt  string     `json:"updatedAt"`
}

func (w moduleWire) toDomain() domain.Module {
	m := domain.Module{
		ID:         w.ID,
		Name:       w.Name,
		Percentage: domain.ParsePercent(string(w.Percentage)),
		ProjectID:  w.ProjectID,
	}
	if t, err := time.Parse(time.RFC3339Nano, w.UpdatedAt); err == nil {
		m.UpdatedAt = t
	}
	return m
}

type sessionWire struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"projectId"`
	Date      string     `json:"date"`
	Feedback  string     `json:"feedback"`
	Summary   string     `json:"summary"`
	Module1   flexString `json:"module1"`
	Module2   flexString `json:"module2"`
	Module3   flexString `json:"module3"`
	Module4   flexString `json:"module4"`
}

func (w sessionWire) toDomain(projectID string) domain.Session {
	s := domain.Session{
		ID:        w.ID,
		ProjectID: w.ProjectID,
		Date:      w.Date,
		Feedback:  w.Feedback,
		Summary:   w.Summary,
		Modules:   [domain.SlotCount]string{string(w.Module1), string(w.Module2), string(w.Module3), string(w.Module4)},
	}
	if s.ProjectID == "" {
		s.ProjectID = projectID
	}
	return s
}

type sessionDraftWire struct {
	Date     string `json:"date"`
	Feedback string `json:"feedback,omitempty"`
	Summary  string `json:"summary,omitempty"`
	Module1  string `json:"module1"`
	Module2  string `json:"module2"`
	Module3  string `json:"module3"`
	Module4  string `json:"module4"`
}

func draftWire(d domain.SessionDraft) sessionDraftWire {
	return sessionDraftWire{
		Date:     d.Date,
		Feedback: d.Feedback,
		Summary:  d.Summary,
		Module1:  d.Modules[0],
		Module2:  d.Modules[1],
		Module3:  d.Modules[2],
		Module4:  d.Modules[3],
	}
}

// patchWire builds a PATCH body containing only the set fields.
func patchWire(p domain.SessionPatch) map[string]string {
	body := map[string]string{}
	if p.Date != nil {
		body["date"] = *p.Date
	}
	if p.Feedback != nil {
		body["feedback"] = *p.Feedback
	}
	if p.Summary != nil {
		body["summary"] = *p.Summary
	}
	for i, m := range p.Modules {
		if m != nil {
			body["module"+strconv.Itoa(i+1)] = *m
		}
	}
	return body
}

type moduleUpdateWire struct {
	ModuleName string `json:"moduleName"`
	Percentage int    `json:"percentage"`
}

type allModulesWire struct {
	Research      int `json:"research"`
	Development   int `json:"development"`
	Testing       int `json:"testing"`
	Documentation int `json:"documentation"`
}
