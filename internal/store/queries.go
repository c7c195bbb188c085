package store

import (
	"fmt"
	"time"
)

// Add records a successful installation, replacing any previous record
// for the same (name, manager) pair.
func (s *Store) Add(name, version, manager, command string) error {
	if version == "" {
		version = "unknown"
	}
	query := `
		INSERT OR REPLACE INTO installed_packages
		(name, version, manager, installed_at, install_command)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query, name, version, manager,
		time.Now().UTC().Format(time.RFC3339), command)
	if err != nil {
		return fmt.Errorf("failed to record package %s: %w", name, wrapErr(err))
	}
	return nil
}

// Remove deletes the record for a package. An empty manager removes the
// record under every manager.
func (s *Store) Remove(name, manager string) error {
	var err error
	if manager != "" {
		_, err = s.db.Exec(`DELETE FROM installed_packages WHERE name = ? AND manager = ?`, name, manager)
	} else {
		_, err = s.db.Exec(`DELETE FROM installed_packages WHERE name = ?`, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", name, wrapErr(err))
	}
	return nil
}

// List returns recorded packages, newest first. An empty manager lists
// every record.
func (s *Store) List(manager string) ([]InstalledPackage, error) {
	base := `
		SELECT name, version, manager, installed_at, install_command
		FROM installed_packages
	`
	var args []any
	if manager != "" {
		base += ` WHERE manager = ?`
		args = append(args, manager)
	}
	base += ` ORDER BY installed_at DESC`

	rows, err := s.db.Query(base, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", wrapErr(err))
	}
	defer rows.Close()

	var packages []InstalledPackage
	for rows.Next() {
		var pkg InstalledPackage
		var installedAt string
		if err := rows.Scan(&pkg.Name, &pkg.Version, &pkg.Manager, &installedAt, &pkg.InstallCommand); err != nil {
			return nil, fmt.Errorf("failed to scan package row: %w", err)
		}
		pkg.InstalledAt, err = time.Parse(time.RFC3339, installedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse installed_at for %s: %w", pkg.Name, err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating packages: %w", err)
	}
	return packages, nil
}

// Exists reports whether a package is recorded as installed. An empty
// manager matches a record under any manager.
func (s *Store) Exists(name, manager string) (bool, error) {
	var count int
	var err error
	if manager != "" {
		err = s.db.QueryRow(
			`SELECT COUNT(*) FROM installed_packages WHERE name = ? AND manager = ?`,
			name, manager).Scan(&count)
	} else {
		err = s.db.QueryRow(
			`SELECT COUNT(*) FROM installed_packages WHERE name = ?`, name).Scan(&count)
	}
	if err != nil {
		return false, fmt.Errorf("failed to check package %s: %w", name, wrapErr(err))
	}
	return count > 0, nil
}
