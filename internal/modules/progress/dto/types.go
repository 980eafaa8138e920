package dto

type ModuleOutput struct {
	ID         string
	Name       string
	Percentage int
	Status     string
}

type ModuleListOutput struct {
	ProjectID string
	Modules   []ModuleOutput
	Global    int
	Warnings  []string
}

type UpdateModuleInput struct {
	ProjectID  string
	ModuleName string
	Percentage int
}

// UpdateAllModulesInput is ordered research, development, testing,
// documentation.
type UpdateAllModulesInput struct {
	ProjectID   string
	Percentages [4]int
}

type SessionOutput struct {
	ID          string
	Date        string
	Summary     string
	Feedback    string
	Modules     [4]string
	Percentages [4]int
	Global      int
}

type SessionListOutput struct {
	ProjectID string
	Sessions  []SessionOutput
	Warnings  []string
}

type CreateSessionInput struct {
	ProjectID string
	Date      string
	Summary   string
	Feedback  string
	Modules   [4]string
}

// UpdateSessionInput leaves nil fields untouched.
type UpdateSessionInput struct {
	ProjectID string
	SessionID string
	Date      *string
	Summary   *string
	Feedback  *string
	Modules   [4]*string
}

type SessionProgressOutput struct {
	SessionID   string
	Date        string
	Labels      [4]string
	Percentages [4]int
	Global      int
}

type OverviewOutput struct {
	ProjectID      string
	ProjectName    string
	Unassigned     bool
	GlobalProgress int
	ModuleProgress int
	Labels         [4]string
	Modules        [4]int
	Sessions       []SessionOutput
	Warnings       []string
}
