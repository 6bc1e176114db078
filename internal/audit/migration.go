package audit

import (
	"context"
	"fmt"
)

// Migration is one idempotent schema change.
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists the schema changes in the order Migrate applies them.
var Migrations = []Migration{
	{
		Name: "create_report_audit",
		SQL: `CREATE TABLE IF NOT EXISTS report_audit (
			id          UUID PRIMARY KEY,
			request_id  TEXT NOT NULL DEFAULT '',
			kind        TEXT NOT NULL,
			filename    TEXT NOT NULL DEFAULT '',
			pages       INTEGER NOT NULL DEFAULT 0,
			bytes       INTEGER NOT NULL DEFAULT 0,
			reference   TEXT NOT NULL DEFAULT '',
			duration_ms BIGINT NOT NULL DEFAULT 0,
			error       TEXT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Name: "index_report_audit_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS report_audit_created_at_idx ON report_audit (created_at DESC)`,
	},
	{
		Name: "index_report_audit_reference",
		SQL:  `CREATE INDEX IF NOT EXISTS report_audit_reference_idx ON report_audit (reference)`,
	},
}

// Migrate applies Migrations. Every statement is idempotent, so it runs on
// each startup.
func (r *Repository) Migrate(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	r.log.Info("audit: starting migrations")
	for _, m := range Migrations {
		if _, err := r.db.Exec(ctx, m.SQL); err != nil {
			r.log.Error("audit: migration failed", "name", m.Name, "err", err)
			return fmt.Errorf("audit: migration %s: %w", m.Name, err)
		}
		r.log.Debug("audit: migration completed", "name", m.Name)
	}
	r.log.Info("audit: migrations completed", "count", len(Migrations))
	return nil
}
