package core

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelprof/modelprof/schema"
)

// LoadProfile reads a profile document from a JSON file. Comparative tags
// are not validated at load time; a bad tag degrades to a display token
// when the profile is compared.
func LoadProfile(path string) (*schema.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile schema.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &profile, nil
}
