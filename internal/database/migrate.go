package database

import (
	"context"
	"database/sql"
)

// migrations are executed in order on startup.  Statements are idempotent
// so restarting the process against an existing database is safe.
//
// shops.floor_id carries a restricting foreign key: a shop may never
// reference a missing floor, and floor removal is handled by the cascade
// delete transaction in the floor repository rather than by the database.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS floors (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name         VARCHAR(191)    NOT NULL,
		floor_number INT             NOT NULL,
		created_at   DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_floors_number (floor_number)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shops (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		shop_number VARCHAR(64)     NOT NULL,
		size        VARCHAR(64)     NOT NULL,
		status      ENUM('AVAILABLE','SOLD') NOT NULL DEFAULT 'AVAILABLE',
		floor_id    BIGINT UNSIGNED NOT NULL,
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_shops_floor (floor_id),
		KEY idx_shops_status (status),
		CONSTRAINT fk_shops_floor FOREIGN KEY (floor_id) REFERENCES floors (id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email         VARCHAR(191)    NOT NULL,
		password_hash VARCHAR(191)    NOT NULL,
		role          VARCHAR(32)     NOT NULL DEFAULT 'SALES',
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate applies the schema statements above against db.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
