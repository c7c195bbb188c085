package store

import "time"

// InstalledPackage is one record of a package installed through
// crossfire. The (Name, Manager) pair is unique.
type InstalledPackage struct {
	Name           string    `json:"name"`
	Version        string    `json:"version"`
	Manager        string    `json:"manager"`
	InstalledAt    time.Time `json:"installed_at"`
	InstallCommand string    `json:"install_command,omitempty"`
}
