// Package roster loads the participant roster from a YAML file and
// normalizes it into the strict domain shape. All validation happens here;
// downstream code can assume a non-empty roster with unique ids.
package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/anies1212/pr-checklist-to-sheets/internal/entities"

	"gopkg.in/yaml.v3"
)

type rosterFile struct {
	Participants []participantDTO `yaml:"participants"`
}

type participantDTO struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Load reads and validates the roster file at path.
func Load(path string) ([]entities.Participant, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}

	var dto rosterFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}

	return normalize(dto.Participants)
}

// normalize converts raw roster entries into participants, rejecting empty
// rosters, blank ids and duplicates.
func normalize(dtos []participantDTO) ([]entities.Participant, error) {
	if len(dtos) == 0 {
		return nil, entities.ErrRosterEmpty
	}

	seen := make(map[string]struct{}, len(dtos))
	out := make([]entities.Participant, 0, len(dtos))
	for i, d := range dtos {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: participant %d has no id", entities.ErrRosterInvalid, i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate participant id %q", entities.ErrRosterInvalid, id)
		}
		seen[id] = struct{}{}
		out = append(out, entities.Participant{ID: id, Label: strings.TrimSpace(d.Label)})
	}
	return out, nil
}
