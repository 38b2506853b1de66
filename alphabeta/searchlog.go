package alphabeta

import (
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tictactoe/board"
)

type candidateLog struct {
	Move  string `yaml:"move"`
	Value int    `yaml:"value"`
}

// SearchLog is the YAML document written for every search when a log stream
// is set. Values of candidates other than the chosen one may be bounds rather
// than exact scores when pruning is on.
type SearchLog struct {
	Board      string         `yaml:"board"`
	Depth      int            `yaml:"depth"`
	Mover      string         `yaml:"mover"`
	Pruning    bool           `yaml:"pruning"`
	Candidates []candidateLog `yaml:"candidates"`
	Chosen     string         `yaml:"chosen"`
	Value      int            `yaml:"value"`
	Nodes      int64          `yaml:"nodes"`
	Leaves     int64          `yaml:"leaves"`
}

func (s *Solver) writeLog(b *board.Board, depth int, xToMove bool, root *GameNode) error {
	entry := SearchLog{
		Board:   b.Snapshot(),
		Depth:   depth,
		Mover:   board.TokenFor(xToMove).String(),
		Pruning: !s.disablePruning,
		Candidates: lo.Map(root.children, func(n *GameNode, _ int) candidateLog {
			return candidateLog{Move: n.move.String(), Value: n.Value()}
		}),
		Chosen: root.best.move.String(),
		Value:  root.Value(),
		Nodes:  s.lastStats.Nodes,
		Leaves: s.lastStats.Leaves,
	}
	out, err := yaml.Marshal([]SearchLog{entry})
	if err != nil {
		return err
	}
	_, err = s.logStream.Write(out)
	return err
}

// OpenSearchLog opens path for appending search logs, creating it if needed.
func OpenSearchLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}
