package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		contractor_id UUID NOT NULL,
		plate_number VARCHAR(32) NOT NULL UNIQUE,
		plate_format VARCHAR(16) NOT NULL,
		body_volume_m3 DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_contractor_id ON vehicles (contractor_id);`,
	`CREATE TABLE IF NOT EXISTS lpr_events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		camera_id UUID NOT NULL,
		raw_plate VARCHAR(32) NOT NULL,
		normalized_plate VARCHAR(32),
		plate_format VARCHAR(16),
		rejection_code VARCHAR(40),
		vehicle_id UUID REFERENCES vehicles(id) ON DELETE SET NULL,
		detected_at TIMESTAMPTZ NOT NULL,
		direction VARCHAR(20),
		confidence DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_camera_id ON lpr_events (camera_id);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_normalized_plate ON lpr_events (normalized_plate);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_vehicle_id ON lpr_events (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_lpr_events_detected_at ON lpr_events (detected_at);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
