package core

import (
	"fmt"
	"time"

	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/internal/logging"
	"github.com/modelprof/modelprof/schema"
)

// resolveProfile loads a profile from the store or from a JSON file,
// depending on how the run was configured.
func resolveProfile(cfg *contract.Config, store contract.ProfileStore, ref string) (*schema.Profile, error) {
	if cfg.FromStore {
		if store == nil {
			return nil, fmt.Errorf("profile store is disabled, cannot resolve %q", ref)
		}
		return store.Load(ref)
	}
	return LoadProfile(ref)
}

// orderedStatus applies the display ordering policy unless the run asked
// for the profile's raw document order.
func orderedStatus(cfg *contract.Config, profile *schema.Profile) *schema.Status {
	status := profile.Status()
	if cfg.RawOrder {
		return status
	}
	return schema.DisplayOrder(status)
}

// ExecuteShow resolves the base profile and returns its display-ready
// status. It serves as the main entry point for the 'show' mode.
func ExecuteShow(cfg *contract.Config, store contract.ProfileStore) (*schema.Status, error) {
	start := time.Now()
	profile, err := resolveProfile(cfg, store, cfg.BaseProfile)
	if err != nil {
		return nil, err
	}
	status := orderedStatus(cfg, profile)
	logging.Logger().Debug("Profile resolved",
		"name", profile.Name, "metrics", len(profile.Metrics), "duration", time.Since(start))
	return status, nil
}

// ExecuteCompare resolves the base and target profiles and returns their
// display-ready statuses. It serves as the main entry point for the
// 'compare' mode.
func ExecuteCompare(cfg *contract.Config, store contract.ProfileStore) (*schema.Status, *schema.Status, error) {
	start := time.Now()
	base, err := resolveProfile(cfg, store, cfg.BaseProfile)
	if err != nil {
		return nil, nil, fmt.Errorf("base profile: %w", err)
	}
	target, err := resolveProfile(cfg, store, cfg.TargetProfile)
	if err != nil {
		return nil, nil, fmt.Errorf("target profile: %w", err)
	}
	baseStatus := orderedStatus(cfg, base)
	targetStatus := orderedStatus(cfg, target)
	logging.Logger().Debug("Profiles resolved",
		"base", base.Name, "target", target.Name, "duration", time.Since(start))
	return baseStatus, targetStatus, nil
}

// ExecuteStoreSave loads a profile from a JSON file and saves it to the
// store under its name.
func ExecuteStoreSave(cfg *contract.Config, store contract.ProfileStore, path string) (*schema.Profile, error) {
	if store == nil {
		return nil, fmt.Errorf("profile store is disabled")
	}
	profile, err := LoadProfile(path)
	if err != nil {
		return nil, err
	}
	if err := store.Save(profile); err != nil {
		return nil, fmt.Errorf("failed to save profile %s: %w", profile.Name, err)
	}
	logging.Logger().Debug("Profile saved", "name", profile.Name, "metrics", len(profile.Metrics))
	return profile, nil
}
