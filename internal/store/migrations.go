package store

const schema = `
CREATE TABLE IF NOT EXISTS windows (
    key        TEXT PRIMARY KEY,
    tweets     TEXT NOT NULL DEFAULT '[]',
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS rules (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL DEFAULT '[]',
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS patterns (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL DEFAULT '[]',
    updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS rule_changes (
    key        TEXT PRIMARY KEY,
    payload    TEXT NOT NULL DEFAULT '[]',
    updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_windows_updated ON windows(updated_at);
`
