package domain

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/state"
)

// Slot is one of the four tracked work dimensions. Slot i is stored on a
// session as module{i+1}.
type Slot int

const (
	SlotResearch Slot = iota
	SlotDevelopment
	SlotTesting
	SlotDocumentation
)

const SlotCount = 4

var slotNames = [SlotCount]string{"research", "development", "testing", "documentation"}

func Slots() []Slot {
	return []Slot{SlotResearch, SlotDevelopment, SlotTesting, SlotDocumentation}
}

func (s Slot) String() string {
	if s < 0 || int(s) >= SlotCount {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// Title is the display form, e.g. "Research".
func (s Slot) Title() string {
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// SlotByName matches a module name to its slot, ignoring case and padding.
func SlotByName(name string) (Slot, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range slotNames {
		if n == key {
			return Slot(i), true
		}
	}
	return 0, false
}

type Module struct {
	ID         string
	Name       string
	Percentage int
	ProjectID  string
	UpdatedAt  time.Time
}

// Session keeps module values exactly as the server stores them: strings that
// may be blank or non-numeric.
type Session struct {
	ID        string
	ProjectID string
	Date      string
	Feedback  string
	Summary   string
	Modules   [SlotCount]string
}

type SessionDraft struct {
	Date     string
	Feedback string
	Summary  string
	Modules  [SlotCount]string
}

// SessionPatch leaves nil fields untouched.
type SessionPatch struct {
	Date     *string
	Feedback *string
	Summary  *string
	Modules  [SlotCount]*string
}

func (p SessionPatch) Empty() bool {
	if p.Date != nil || p.Feedback != nil || p.Summary != nil {
		return false
	}
	for _, m := range p.Modules {
		if m != nil {
			return false
		}
	}
	return true
}

type Overview struct {
	ProjectID      string
	ProjectName    string
	GlobalProgress int
	// ModuleProgress is the mean of the module records, shown next to the
	// session-derived GlobalProgress.
	ModuleProgress int
	Modules        [SlotCount]int
	Sessions       []Session
	Warnings       []string
}

func ValidatePercent(p int) error {
	if p < 0 || p > 100 {
		return apperrors.Invalid("percentage %d outside [0,100]", p)
	}
	return nil
}

// ValidateProjectID rejects blank ids and the "undefined" placeholder. The
// sentinel id is valid and callers treat it as "no project".
func ValidateProjectID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" || trimmed == "undefined" || trimmed == "null" {
		return apperrors.Invalid("project id is required")
	}
	return nil
}

func IsUnassigned(id string) bool {
	return strings.TrimSpace(id) == state.SentinelProjectID
}

// Aggregate is round-half-up of the mean, 0 for no values.
func Aggregate(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += clamp(v)
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

// ParsePercent never fails: blank or non-numeric input is 0, a trailing "%"
// is ignored, decimals are rounded and the result is clamped to [0,100].
func ParsePercent(raw string) int {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return clamp(n)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clamp(int(math.Round(math.Max(-1, math.Min(101, f)))))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func SessionPercentages(s Session) [SlotCount]int {
	var out [SlotCount]int
	for i, raw := range s.Modules {
		out[i] = ParsePercent(raw)
	}
	return out
}

func GlobalFromSession(s Session) int {
	values := SessionPercentages(s)
	return Aggregate(values[:])
}

// ModulePercentages maps module records onto slots. Unknown names are
// ignored; the last record wins when a slot repeats.
func ModulePercentages(mods []Module) [SlotCount]int {
	values, _ := modulesBySlot(mods)
	return values
}

func modulesBySlot(mods []Module) ([SlotCount]int, [SlotCount]bool) {
	var values [SlotCount]int
	var present [SlotCount]bool
	for _, m := range mods {
		slot, ok := SlotByName(m.Name)
		if !ok {
			continue
		}
		values[slot] = clamp(m.Percentage)
		present[slot] = true
	}
	return values, present
}

func GlobalFromModules(mods []Module) int {
	values := ModulePercentages(mods)
	return Aggregate(values[:])
}

// Reconcile fills blank session slots from the current module records, or
// "0" when the slot has no module. Populated values are never overwritten.
// The input slice is not modified.
func Reconcile(sessions []Session, mods []Module) []Session {
	values, present := modulesBySlot(mods)
	out := make([]Session, len(sessions))
	for i, s := range sessions {
		for slot, raw := range s.Modules {
			if strings.TrimSpace(raw) != "" {
				continue
			}
			if present[slot] {
				s.Modules[slot] = strconv.Itoa(values[slot])
			} else {
				s.Modules[slot] = "0"
			}
		}
		out[i] = s
	}
	return out
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

func ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByDate orders sessions newest first. Unparsable dates go last and
// equal dates keep their server order.
func SortByDate(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		ta, okA := ParseDate(a.Date)
		tb, okB := ParseDate(b.Date)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

// LatestSession returns the newest session by date.
func LatestSession(sessions []Session) (Session, bool) {
	if len(sessions) == 0 {
		return Session{}, false
	}
	sorted := slices.Clone(sessions)
	SortByDate(sorted)
	return sorted[0], true
}

// Global is the authoritative project progress: the mean of the latest
// session's four values, 0 when there are no sessions.
func Global(sessions []Session) int {
	latest, ok := LatestSession(sessions)
	if !ok {
		return 0
	}
	return GlobalFromSession(latest)
}

func Status(percent int) string {
	switch {
	case percent <= 0:
		return "not started"
	case percent >= 100:
		return "done"
	default:
		return "in progress"
	}
}
