// file: config/allowlist.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Allowlist is the static authorization table: which fids may judge, which fids
// may post progress updates, and which team each fid reports for. It is loaded
// at startup and never mutated afterwards.
type Allowlist struct {
	Voters    []uint64          `yaml:"voters"`
	Reporters []uint64          `yaml:"reporters"`
	Teams     map[uint64]string `yaml:"teams"`

	voterSet    map[uint64]struct{}
	reporterSet map[uint64]struct{}
}

// LoadAllowlist parses the YAML allow-list file and builds the lookup sets.
func LoadAllowlist(path string) (*Allowlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read allowlist: %w", err)
	}

	var al Allowlist
	if err := yaml.Unmarshal(data, &al); err != nil {
		return nil, fmt.Errorf("parse allowlist: %w", err)
	}
	al.index()
	return &al, nil
}

// NewAllowlist builds an Allowlist from in-memory values. Used by tests and by
// deployments that inject the lists without a file.
func NewAllowlist(voters, reporters []uint64, teams map[uint64]string) *Allowlist {
	al := &Allowlist{Voters: voters, Reporters: reporters, Teams: teams}
	al.index()
	return al
}

func (a *Allowlist) index() {
	a.voterSet = make(map[uint64]struct{}, len(a.Voters))
	for _, fid := range a.Voters {
		a.voterSet[fid] = struct{}{}
	}
	a.reporterSet = make(map[uint64]struct{}, len(a.Reporters))
	for _, fid := range a.Reporters {
		a.reporterSet[fid] = struct{}{}
	}
	if a.Teams == nil {
		a.Teams = map[uint64]string{}
	}
}

// CanVote reports whether the fid belongs to the judging panel.
func (a *Allowlist) CanVote(fid uint64) bool {
	_, ok := a.voterSet[fid]
	return ok
}

// CanReport reports whether the fid may author progress updates.
func (a *Allowlist) CanReport(fid uint64) bool {
	_, ok := a.reporterSet[fid]
	return ok
}

// TeamFor returns the team name the fid reports for, or "" when unmapped.
func (a *Allowlist) TeamFor(fid uint64) string {
	return a.Teams[fid]
}
