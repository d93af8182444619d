package store

const schema = `
CREATE TABLE IF NOT EXISTS study_sets (
    id         TEXT PRIMARY KEY,
    title      TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS cards (
    set_id   TEXT NOT NULL,
    position INTEGER NOT NULL,
    front    TEXT NOT NULL,
    back     TEXT NOT NULL,

    PRIMARY KEY (set_id, position),
    FOREIGN KEY (set_id) REFERENCES study_sets(id) ON DELETE CASCADE
);

-- Mastery records for a set are stored as a single JSON document keyed
-- by set id. Saves overwrite the whole document.
CREATE TABLE IF NOT EXISTS mastery_state (
    set_id     TEXT PRIMARY KEY,
    data       TEXT NOT NULL,
    updated_at DATETIME NOT NULL,

    FOREIGN KEY (set_id) REFERENCES study_sets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS test_results (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    set_id   TEXT NOT NULL,
    score    INTEGER NOT NULL,
    total    INTEGER NOT NULL,
    taken_at DATETIME NOT NULL,

    FOREIGN KEY (set_id) REFERENCES study_sets(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS llm_events (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    provider      TEXT NOT NULL,
    model         TEXT NOT NULL,
    purpose       TEXT NOT NULL,
    input_tokens  INTEGER NOT NULL DEFAULT 0,
    output_tokens INTEGER NOT NULL DEFAULT 0,
    latency_ms    INTEGER NOT NULL DEFAULT 0,
    success       INTEGER NOT NULL,
    error_message TEXT NOT NULL DEFAULT '',
    created_at    DATETIME NOT NULL
);
`
