package manager

// SearchKind selects how a manager's search capability is exercised.
type SearchKind int

const (
	// SearchCLI runs the manager's own search subcommand and parses
	// line-oriented text output.
	SearchCLI SearchKind = iota
	// SearchPyPI queries the PyPI JSON API.
	SearchPyPI
	// SearchNPM queries the npm registry search API.
	SearchNPM
	// SearchBrewCatalog scans the Homebrew formulae catalog, backed by
	// a time-bounded local cache file.
	SearchBrewCatalog
)

// Descriptor is the static catalog entry for one manager. Descriptors
// are constructed once at process start and never mutated.
type Descriptor struct {
	ID   ID
	Name string // human display name

	// OS families ("linux", "macos", "windows") the manager supports.
	OS []string

	// InstallArgs builds the install argv for a package. Non-nil for
	// every supported manager.
	InstallArgs func(pkg string) []string

	// RemoveArgs builds the removal argv, or nil when the manager does
	// not support removal through this tool.
	RemoveArgs func(pkg string) []string

	// SearchArgs builds the search argv for SearchCLI managers.
	SearchArgs func(query string) []string

	SearchKind SearchKind

	// UpdateArgs returns the command sequence that updates the manager
	// and its packages, or nil when unsupported.
	UpdateArgs func() [][]string

	// CleanArgs returns the command sequence that clears the manager's
	// caches, or nil when unsupported.
	CleanArgs func() [][]string

	// BootstrapArgs returns the argv that installs the manager itself,
	// or nil when installation is manual.
	BootstrapArgs func() []string

	// BootstrapHint describes how to install the manager by hand.
	BootstrapHint string
}

// SupportsOS reports whether the descriptor lists the given OS family.
func (d Descriptor) SupportsOS(osName string) bool {
	for _, o := range d.OS {
		if o == osName {
			return true
		}
	}
	return false
}

// Lookup returns the descriptor for a manager ID.
func Lookup(id ID) Descriptor {
	return registry[id]
}

func argv(parts ...string) []string { return parts }

var registry = [numManagers]Descriptor{
	Pip: {
		ID:   Pip,
		Name: "Python (pip)",
		OS:   []string{"linux", "macos", "windows"},
		InstallArgs: func(pkg string) []string {
			return append(pythonArgv(), "-m", "pip", "install", "--user", pkg)
		},
		RemoveArgs: func(pkg string) []string {
			return append(pythonArgv(), "-m", "pip", "uninstall", "-y", pkg)
		},
		SearchKind: SearchPyPI,
		UpdateArgs: func() [][]string {
			return [][]string{append(pythonArgv(), "-m", "pip", "install", "--upgrade", "pip")}
		},
		CleanArgs: func() [][]string {
			return [][]string{append(pythonArgv(), "-m", "pip", "cache", "purge")}
		},
		BootstrapArgs: func() []string {
			return append(pythonArgv(), "-m", "ensurepip", "--upgrade")
		},
		BootstrapHint: "pip is bundled with Python 3.4+. Run: python -m ensurepip --upgrade",
	},
	Npm: {
		ID:          Npm,
		Name:        "Node.js (npm)",
		OS:          []string{"linux", "macos", "windows"},
		InstallArgs: func(pkg string) []string { return argv("npm", "install", "-g", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("npm", "uninstall", "-g", pkg) },
		SearchKind:  SearchNPM,
		UpdateArgs: func() [][]string {
			return [][]string{argv("npm", "update", "-g", "npm")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("npm", "cache", "clean", "--force")}
		},
		BootstrapHint: "https://nodejs.org/ (download Node.js which includes npm)",
	},
	Apt: {
		ID:          Apt,
		Name:        "APT",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "apt", "install", "-y", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("sudo", "apt", "remove", "-y", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("apt-cache", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{
				argv("sudo", "apt", "update"),
				argv("sudo", "apt", "upgrade", "-y"),
			}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("sudo", "apt", "clean")}
		},
		BootstrapHint: "APT is preinstalled on Debian/Ubuntu systems",
	},
	Dnf: {
		ID:          Dnf,
		Name:        "DNF",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "dnf", "install", "-y", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("sudo", "dnf", "remove", "-y", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("dnf", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("sudo", "dnf", "update", "-y")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("sudo", "dnf", "clean", "all")}
		},
		BootstrapHint: "DNF is preinstalled on Fedora systems",
	},
	Yum: {
		ID:          Yum,
		Name:        "YUM",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "yum", "install", "-y", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("sudo", "yum", "remove", "-y", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("yum", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("sudo", "yum", "update", "-y")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("sudo", "yum", "clean", "all")}
		},
		BootstrapHint: "YUM is preinstalled on RHEL/CentOS systems",
	},
	Pacman: {
		ID:          Pacman,
		Name:        "Pacman",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "pacman", "-S", "--noconfirm", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("sudo", "pacman", "-R", "--noconfirm", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("pacman", "-Ss", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("sudo", "pacman", "-Syu", "--noconfirm")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("sudo", "pacman", "-Sc", "--noconfirm")}
		},
		BootstrapHint: "pacman is preinstalled on Arch Linux",
	},
	Zypper: {
		ID:          Zypper,
		Name:        "Zypper",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "zypper", "--non-interactive", "install", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("zypper", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("sudo", "zypper", "update", "-y")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("sudo", "zypper", "clean")}
		},
		BootstrapHint: "zypper is preinstalled on openSUSE",
	},
	Apk: {
		ID:          Apk,
		Name:        "APK",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "apk", "add", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("apk", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{
				argv("sudo", "apk", "update"),
				argv("sudo", "apk", "upgrade"),
			}
		},
		BootstrapHint: "apk is bundled with Alpine Linux",
	},
	Brew: {
		ID:          Brew,
		Name:        "Homebrew",
		OS:          []string{"macos", "linux"},
		InstallArgs: func(pkg string) []string { return argv("brew", "install", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("brew", "uninstall", pkg) },
		SearchKind:  SearchBrewCatalog,
		UpdateArgs: func() [][]string {
			return [][]string{
				argv("brew", "update"),
				argv("brew", "upgrade"),
			}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("brew", "cleanup")}
		},
		BootstrapHint: `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`,
	},
	Choco: {
		ID:          Choco,
		Name:        "Chocolatey",
		OS:          []string{"windows"},
		InstallArgs: func(pkg string) []string { return argv("choco", "install", "-y", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("choco", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("choco", "upgrade", "all", "-y")}
		},
		BootstrapHint: "See https://chocolatey.org/install (requires an elevated PowerShell)",
	},
	Winget: {
		ID:   Winget,
		Name: "Winget",
		OS:   []string{"windows"},
		InstallArgs: func(pkg string) []string {
			return argv("winget", "install", "--silent",
				"--accept-package-agreements", "--accept-source-agreements", pkg)
		},
		SearchKind: SearchCLI,
		SearchArgs: func(q string) []string { return argv("winget", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("winget", "upgrade", "--all", "--silent",
				"--accept-package-agreements", "--accept-source-agreements")}
		},
		BootstrapHint: "winget is preinstalled on Windows 11. Install via Microsoft Store on Windows 10.",
	},
	Snap: {
		ID:          Snap,
		Name:        "Snap",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("sudo", "snap", "install", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("sudo", "snap", "remove", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("snap", "find", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("sudo", "snap", "refresh")}
		},
		BootstrapArgs: func() []string {
			return argv("sudo", "apt", "install", "-y", "snapd")
		},
		BootstrapHint: "Install the snapd package with your distribution's package manager",
	},
	Flatpak: {
		ID:          Flatpak,
		Name:        "Flatpak",
		OS:          []string{"linux"},
		InstallArgs: func(pkg string) []string { return argv("flatpak", "install", "-y", pkg) },
		RemoveArgs:  func(pkg string) []string { return argv("flatpak", "uninstall", "-y", pkg) },
		SearchKind:  SearchCLI,
		SearchArgs:  func(q string) []string { return argv("flatpak", "search", q) },
		UpdateArgs: func() [][]string {
			return [][]string{argv("flatpak", "update", "-y")}
		},
		CleanArgs: func() [][]string {
			return [][]string{argv("flatpak", "uninstall", "--unused", "-y")}
		},
		BootstrapArgs: func() []string {
			return argv("sudo", "apt", "install", "-y", "flatpak")
		},
		BootstrapHint: "Install the flatpak package with your distribution's package manager",
	},
}
