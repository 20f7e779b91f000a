package schema

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidProfile indicates a profile document that fails structural
// validation.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the document shape for one saved profiling run: the model
// identity plus its metrics in display-relevant order.
type Profile struct {
	Name    string        `json:"name"`
	Backend string        `json:"backend"`
	Metrics []*MetricSpec `json:"metrics"`
}

// Validate checks the structural invariants of a profile document. Metric
// comparative tags are deliberately not validated here; unknown tags
// degrade to a display token at the rendering boundary instead.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidProfile)
	}
	seen := make(map[string]struct{}, len(p.Metrics))
	for i, m := range p.Metrics {
		if m == nil || m.Key == "" {
			return fmt.Errorf("%w: metric %d has no key", ErrInvalidProfile, i)
		}
		if m.Key == NameKey || m.Key == BackendKey {
			return fmt.Errorf("%w: metric key %q is reserved", ErrInvalidProfile, m.Key)
		}
		if _, ok := seen[m.Key]; ok {
			return fmt.Errorf("%w: duplicate metric key %q", ErrInvalidProfile, m.Key)
		}
		seen[m.Key] = struct{}{}
	}
	return nil
}

// Status converts the profile into its status mapping: the name and
// backend scalars first, then every metric in document order.
func (p *Profile) Status() *Status {
	status := NewStatus()
	status.Set(NameKey, ScalarEntry(p.Name))
	status.Set(BackendKey, ScalarEntry(p.Backend))
	for _, m := range p.Metrics {
		status.Set(m.Key, MetricEntry(m))
	}
	return status
}

// StoredProfile is the listing row for a profile kept in the store.
type StoredProfile struct {
	Name        string    `json:"name"`
	Backend     string    `json:"backend"`
	MetricCount int       `json:"metric_count"`
	SavedAt     time.Time `json:"saved_at"`
}

// StoreStatus has status information about the profile store.
type StoreStatus struct {
	Backend      DatabaseBackend `json:"backend"`
	ProfileCount int             `json:"profile_count"`
	MetricCount  int             `json:"metric_count"`
}
