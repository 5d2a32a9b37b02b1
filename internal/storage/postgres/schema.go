package postgres

import (
	"context"

	"crowdWatch/pkg/e"
)

const schema = `
CREATE TABLE IF NOT EXISTS location_samples (
	id         uuid PRIMARY KEY,
	user_id    uuid NOT NULL,
	latitude   double precision NOT NULL,
	longitude  double precision NOT NULL,
	ts         timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS location_samples_ts_idx ON location_samples (ts);

CREATE TABLE IF NOT EXISTS zones (
	id        text PRIMARY KEY,
	name      text NOT NULL DEFAULT '',
	event_id  text NOT NULL DEFAULT '',
	boundary  jsonb,
	capacity  integer NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS density_readings (
	zone_id             text PRIMARY KEY,
	zone_name           text NOT NULL DEFAULT '',
	event_id            text NOT NULL DEFAULT '',
	current_population  integer NOT NULL,
	capacity            integer NOT NULL,
	density_value       double precision NOT NULL,
	status              text NOT NULL,
	last_updated        timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS density_readings_event_idx ON density_readings (event_id);

CREATE TABLE IF NOT EXISTS alerts (
	id               uuid PRIMARY KEY,
	type             text NOT NULL,
	message          text NOT NULL,
	severity         text NOT NULL,
	event_id         text NOT NULL DEFAULT '',
	zone_id          text NOT NULL DEFAULT '',
	zone_name        text NOT NULL DEFAULT '',
	target_roles     text[] NOT NULL DEFAULT '{}',
	is_active        boolean NOT NULL DEFAULT true,
	created_by       text NOT NULL,
	created_by_name  text NOT NULL DEFAULT '',
	created_at       timestamptz NOT NULL,
	expires_at       timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS alerts_dedup_idx ON alerts (event_id, zone_id, type, created_at) WHERE is_active;

CREATE TABLE IF NOT EXISTS incidents (
	id           uuid PRIMARY KEY,
	type         text NOT NULL,
	severity     text NOT NULL,
	description  text NOT NULL DEFAULT '',
	status       text NOT NULL,
	event_id     text NOT NULL DEFAULT '',
	created_at   timestamptz NOT NULL,
	updated_at   timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS archived_incidents (
	id           uuid PRIMARY KEY,
	type         text NOT NULL,
	severity     text NOT NULL,
	description  text NOT NULL DEFAULT '',
	status       text NOT NULL,
	event_id     text NOT NULL DEFAULT '',
	created_at   timestamptz NOT NULL,
	updated_at   timestamptz NOT NULL,
	archived_at  timestamptz NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            text PRIMARY KEY,
	email         text NOT NULL DEFAULT '',
	display_name  text NOT NULL DEFAULT '',
	role          text NOT NULL DEFAULT 'fan',
	is_active     boolean NOT NULL DEFAULT true,
	fcm_token     text NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS users_role_idx ON users (role) WHERE is_active;

CREATE TABLE IF NOT EXISTS notifications (
	id            uuid PRIMARY KEY,
	user_id       text NOT NULL,
	title         text NOT NULL,
	body          text NOT NULL,
	type          text NOT NULL,
	reference_id  text NOT NULL DEFAULT '',
	is_read       boolean NOT NULL DEFAULT false,
	created_at    timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS notifications_user_idx ON notifications (user_id, created_at DESC);
`

// EnsureSchema creates missing tables and indexes.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	const op = "postgres.EnsureSchema"

	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return e.WrapError(ctx, op, err)
	}
	return nil
}
