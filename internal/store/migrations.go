package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	due        TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'not-started'
		CHECK(status IN ('not-started', 'in-progress', 'complete')),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- project_id is a weak reference: deleting a project leaves tasks
-- pointing at a missing id, which renders as a placeholder.
CREATE TABLE IF NOT EXISTS tasks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL DEFAULT '',
	date       TEXT NOT NULL DEFAULT '',
	project_id TEXT NOT NULL DEFAULT '',
	progress   INTEGER NOT NULL DEFAULT 0 CHECK(progress BETWEEN 0 AND 100),
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_tasks_date ON tasks(date);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
