package profstore

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/modelprof/modelprof/internal/contract"
	"github.com/modelprof/modelprof/schema"
)

// ErrStoreDisabled indicates an operation against the no-op store.
var ErrStoreDisabled = errors.New("profile store is disabled")

// Save inserts or replaces the profile under its name. The profile row and
// its metric rows are written in one transaction so a failed save never
// leaves a half-replaced profile behind.
func (s *ProfileStoreImpl) Save(profile *schema.Profile) error {
	if s.db == nil {
		return ErrStoreDisabled
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteProfile := s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE profile_name = ?`, profilesTable))
	if _, err := tx.Exec(deleteProfile, profile.Name); err != nil {
		return fmt.Errorf("failed to clear profile row: %w", err)
	}
	deleteMetrics := s.rebind(fmt.Sprintf(`DELETE FROM %s WHERE profile_name = ?`, metricsTable))
	if _, err := tx.Exec(deleteMetrics, profile.Name); err != nil {
		return fmt.Errorf("failed to clear metric rows: %w", err)
	}

	insertProfile := s.rebind(fmt.Sprintf(
		`INSERT INTO %s (profile_name, backend, saved_at) VALUES (?, ?, ?)`, profilesTable))
	if _, err := tx.Exec(insertProfile, profile.Name, profile.Backend, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to insert profile row: %w", err)
	}

	insertMetric := s.rebind(fmt.Sprintf(
		`INSERT INTO %s (profile_name, metric_key, metric_position, label, metric_value, units, comparative, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, metricsTable))
	for i, m := range profile.Metrics {
		var value sql.NullFloat64
		if raw, ok := m.Value(); ok {
			value = sql.NullFloat64{Float64: raw, Valid: true}
		}
		if _, err := tx.Exec(insertMetric,
			profile.Name, m.Key, i, m.Name, value, m.Unit, string(m.Mode), m.Note); err != nil {
			return fmt.Errorf("failed to insert metric %s: %w", m.Key, err)
		}
	}

	return tx.Commit()
}

// Load returns the profile saved under name. Metric rows come back in
// their original document order.
func (s *ProfileStoreImpl) Load(name string) (*schema.Profile, error) {
	if s.db == nil {
		return nil, ErrStoreDisabled
	}

	profile := &schema.Profile{Name: name}
	selectProfile := s.rebind(fmt.Sprintf(
		`SELECT backend FROM %s WHERE profile_name = ?`, profilesTable))
	err := s.db.QueryRow(selectProfile, name).Scan(&profile.Backend)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", contract.ErrProfileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", name, err)
	}

	selectMetrics := s.rebind(fmt.Sprintf(
		`SELECT metric_key, label, metric_value, units, comparative, description
		 FROM %s WHERE profile_name = ? ORDER BY metric_position`, metricsTable))
	rows, err := s.db.Query(selectMetrics, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics for %s: %w", name, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			m           schema.MetricSpec
			value       sql.NullFloat64
			comparative string
		)
		if err := rows.Scan(&m.Key, &m.Name, &value, &m.Unit, &comparative, &m.Note); err != nil {
			return nil, fmt.Errorf("failed to scan metric row: %w", err)
		}
		if value.Valid {
			raw := value.Float64
			m.Raw = &raw
		}
		m.Mode = schema.Comparative(comparative)
		profile.Metrics = append(profile.Metrics, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate metric rows: %w", err)
	}

	return profile, nil
}

// List returns a listing row per saved profile, newest first.
func (s *ProfileStoreImpl) List() ([]schema.StoredProfile, error) {
	if s.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT p.profile_name, p.backend, p.saved_at, COUNT(m.metric_key)
		FROM %s p
		LEFT JOIN %s m ON m.profile_name = p.profile_name
		GROUP BY p.profile_name, p.backend, p.saved_at
		ORDER BY p.saved_at DESC, p.profile_name`, profilesTable, metricsTable)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listing []schema.StoredProfile
	for rows.Next() {
		var (
			sp      schema.StoredProfile
			savedAt int64
		)
		if err := rows.Scan(&sp.Name, &sp.Backend, &savedAt, &sp.MetricCount); err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		sp.SavedAt = time.Unix(savedAt, 0)
		listing = append(listing, sp)
	}
	return listing, rows.Err()
}

// GetStatus returns status information about the store.
func (s *ProfileStoreImpl) GetStatus() (schema.StoreStatus, error) {
	status := schema.StoreStatus{Backend: s.backend}
	if s.db == nil {
		return status, nil
	}

	profileCount := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, profilesTable)
	if err := s.db.QueryRow(profileCount).Scan(&status.ProfileCount); err != nil {
		return status, fmt.Errorf("failed to count profiles: %w", err)
	}
	metricCount := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, metricsTable)
	if err := s.db.QueryRow(metricCount).Scan(&status.MetricCount); err != nil {
		return status, fmt.Errorf("failed to count metrics: %w", err)
	}
	return status, nil
}
