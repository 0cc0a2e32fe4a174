package sqlite

// schemaSQL creates the contact tables. Position keeps the list order;
// name_key is the case-folded name and enforces uniqueness.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS persons (
	position  INTEGER PRIMARY KEY,
	name      TEXT NOT NULL,
	name_key  TEXT NOT NULL UNIQUE,
	phone     TEXT NOT NULL,
	email     TEXT NOT NULL,
	address   TEXT NOT NULL DEFAULT '',
	telegram  TEXT NOT NULL DEFAULT '',
	github    TEXT NOT NULL DEFAULT '',
	pinned    INTEGER NOT NULL DEFAULT 0 CHECK (pinned IN (0, 1)),
	pinned_at TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS person_tags (
	position INTEGER NOT NULL REFERENCES persons(position) ON DELETE CASCADE,
	tag      TEXT NOT NULL,
	PRIMARY KEY (position, tag)
);
`

const (
	insertPersonSQL = `INSERT INTO persons
	(position, name, name_key, phone, email, address, telegram, github, pinned, pinned_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertTagSQL = `INSERT INTO person_tags (position, tag) VALUES (?, ?)`

	selectPersonsSQL = `SELECT position, name, phone, email, address, telegram, github, pinned, pinned_at
	FROM persons ORDER BY position`

	selectTagsSQL = `SELECT position, tag FROM person_tags ORDER BY position, tag`
)
