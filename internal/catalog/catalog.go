// Package catalog provides the fixed seed data used to populate an empty
// store on first startup.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed seed.json
var seedJSON []byte

// Activity describes one catalog entry: the descriptive fields and the
// initial roster of participant emails.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Catalog maps activity names to their seed entries.
type Catalog map[string]Activity

// Load parses and validates the embedded seed catalog. It is called once at
// process start; the returned value is plain data with no shared state.
func Load() (Catalog, error) {
	return Parse(seedJSON)
}

// Parse decodes catalog JSON and validates every entry.
func Parse(data []byte) (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse seed data: %w", err)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Names returns the activity names in ascending order, giving seeding a
// deterministic insertion order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c Catalog) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog: seed data is empty")
	}

	for name, entry := range c {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("catalog: activity name must not be blank")
		}
		if entry.MaxParticipants < 0 {
			return fmt.Errorf("catalog: %s: max_participants must not be negative", name)
		}
		if entry.MaxParticipants > 0 && len(entry.Participants) > entry.MaxParticipants {
			return fmt.Errorf("catalog: %s: initial roster exceeds capacity", name)
		}
		seen := make(map[string]struct{}, len(entry.Participants))
		for _, email := range entry.Participants {
			if strings.TrimSpace(email) == "" {
				return fmt.Errorf("catalog: %s: participant email must not be blank", name)
			}
			if _, ok := seen[email]; ok {
				return fmt.Errorf("catalog: %s: duplicate participant %s", name, email)
			}
			seen[email] = struct{}{}
		}
	}

	return nil
}
