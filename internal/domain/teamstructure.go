package domain

// TeamMember is one roster entry in a team structure.
type TeamMember struct {
	Name  string
	Buddy string
	Notes string
}

// TeamStructure describes a team's lead and its build/QA rosters. Loaded
// from the seed file; read-only at runtime.
type TeamStructure struct {
	Name      TeamName
	Lead      string
	BuildTeam []TeamMember
	QATeam    []TeamMember
}

// SubmissionStats is a per-team submission count pair.
type SubmissionStats struct {
	Today int
	Total int
}
