package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hemanthkpolineni-commits/Dashboard-Project/internal/domain"
)

// Seed is the YAML seed file: initial accounts, team structure rosters and
// optional starter submissions. All of it is optional; an empty seed yields
// an empty dashboard.
type Seed struct {
	Users       []SeedUser       `yaml:"users"`
	Teams       []SeedTeam       `yaml:"teams"`
	Submissions []SeedSubmission `yaml:"submissions"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Team     string `yaml:"team"`
}

type SeedTeam struct {
	Name      string       `yaml:"name"`
	Lead      string       `yaml:"lead"`
	BuildTeam []SeedMember `yaml:"build_team"`
	QATeam    []SeedMember `yaml:"qa_team"`
}

type SeedMember struct {
	Name  string `yaml:"name"`
	Buddy string `yaml:"buddy"`
	Notes string `yaml:"notes"`
}

type SeedSubmission struct {
	Title         string `yaml:"title"`
	ProjectType   string `yaml:"project_type"`
	TaskTitle     string `yaml:"task_title"`
	SubmitterName string `yaml:"submitter_name"`
	ProjectStatus string `yaml:"project_status"`
	Team          string `yaml:"team"`
	Status        string `yaml:"status"`
	CreatedDate   string `yaml:"created_date"`
	BuildDueDate  string `yaml:"build_due_date"`
}

// LoadSeed reads and parses a seed file. ${VAR} placeholders are replaced
// with the matching environment variables before parsing, so initial
// passwords can be kept out of the file.
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	content := string(data)
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}

	var seed Seed
	if err := yaml.Unmarshal([]byte(content), &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &seed, nil
}

// TeamStructures converts the seeded rosters into domain values.
func (s *Seed) TeamStructures() []domain.TeamStructure {
	structures := make([]domain.TeamStructure, 0, len(s.Teams))
	for _, team := range s.Teams {
		ts := domain.TeamStructure{
			Name: domain.TeamName(team.Name),
			Lead: team.Lead,
		}
		for _, m := range team.BuildTeam {
			ts.BuildTeam = append(ts.BuildTeam, domain.TeamMember{Name: m.Name, Buddy: m.Buddy, Notes: m.Notes})
		}
		for _, m := range team.QATeam {
			ts.QATeam = append(ts.QATeam, domain.TeamMember{Name: m.Name, Buddy: m.Buddy, Notes: m.Notes})
		}
		structures = append(structures, ts)
	}
	return structures
}
