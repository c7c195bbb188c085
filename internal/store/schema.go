package store

const schema = `
CREATE TABLE IF NOT EXISTS installed_packages (
    name TEXT NOT NULL,
    version TEXT,
    manager TEXT NOT NULL,
    installed_at TIMESTAMP NOT NULL,
    install_command TEXT,
    PRIMARY KEY (name, manager)
);

CREATE INDEX IF NOT EXISTS idx_installed_manager ON installed_packages(manager);
CREATE INDEX IF NOT EXISTS idx_installed_at ON installed_packages(installed_at);
`
