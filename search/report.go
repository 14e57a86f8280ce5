package search

import (
	"gopkg.in/yaml.v3"
)

// DecideReport is a diagnostic snapshot of one Decide call, serialized
// to YAML for offline inspection or bug reports. It is not part of the
// core decide contract; callers that don't want it can ignore it.
type DecideReport struct {
	Move           string `yaml:"move"`
	Score          int32  `yaml:"score"`
	NodesEvaluated uint64 `yaml:"nodes_evaluated"`
	Threads        int    `yaml:"threads"`
}

// NewDecideReport builds a report from a completed Decide call.
func NewDecideReport(m Move, s Stats, threads int) DecideReport {
	return DecideReport{
		Move:           m.Tile.String(),
		Score:          m.Score,
		NodesEvaluated: s.NodesEvaluated,
		Threads:        threads,
	}
}

// YAML renders the report as a YAML document.
func (r DecideReport) YAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
