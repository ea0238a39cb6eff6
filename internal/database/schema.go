package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements creates the eight tables of the reservations schema.
// Order matters: referenced tables come before their referrers. All
// foreign keys use the default restricting behaviour, so a row cannot
// be deleted while anything still points at it.
//
// Two constraints are deliberately absent: flights.code carries no
// unique index and there is no departure-before-arrival check. Both
// rules are enforced by the flight service instead.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(100) NOT NULL,
		is_super_user TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id_PK),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS airplanes (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		airline VARCHAR(100) NOT NULL,
		model VARCHAR(100) NOT NULL,
		code VARCHAR(16) NOT NULL,
		capacity INT NOT NULL,
		year INT NOT NULL,
		PRIMARY KEY (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS cities (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(100) NOT NULL,
		country VARCHAR(100) NOT NULL,
		code VARCHAR(8) NOT NULL,
		PRIMARY KEY (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS flight_status (
		id_PK INT UNSIGNED NOT NULL,
		name VARCHAR(50) NOT NULL,
		description VARCHAR(255) NOT NULL,
		PRIMARY KEY (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations_status (
		id_PK INT UNSIGNED NOT NULL,
		name VARCHAR(50) NOT NULL,
		description VARCHAR(255) NOT NULL,
		PRIMARY KEY (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS flights (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		airplane_FK INT UNSIGNED NOT NULL,
		status_FK INT UNSIGNED NOT NULL,
		origin_city_FK INT UNSIGNED NOT NULL,
		destination_city_FK INT UNSIGNED NOT NULL,
		code VARCHAR(16) NOT NULL,
		departure_time DATETIME NOT NULL,
		arrival_time DATETIME NOT NULL,
		price_base DECIMAL(10,2) NOT NULL,
		PRIMARY KEY (id_PK),
		KEY idx_flights_code (code),
		CONSTRAINT fk_flights_airplane FOREIGN KEY (airplane_FK) REFERENCES airplanes (id_PK),
		CONSTRAINT fk_flights_status FOREIGN KEY (status_FK) REFERENCES flight_status (id_PK),
		CONSTRAINT fk_flights_origin FOREIGN KEY (origin_city_FK) REFERENCES cities (id_PK),
		CONSTRAINT fk_flights_destination FOREIGN KEY (destination_city_FK) REFERENCES cities (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS reservations (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_FK INT UNSIGNED NOT NULL,
		status_FK INT UNSIGNED NOT NULL,
		flight_FK INT UNSIGNED NOT NULL,
		reserved_at DATETIME NOT NULL,
		PRIMARY KEY (id_PK),
		CONSTRAINT fk_reservations_user FOREIGN KEY (user_FK) REFERENCES users (id_PK),
		CONSTRAINT fk_reservations_status FOREIGN KEY (status_FK) REFERENCES reservations_status (id_PK),
		CONSTRAINT fk_reservations_flight FOREIGN KEY (flight_FK) REFERENCES flights (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS seats (
		id_PK INT UNSIGNED NOT NULL AUTO_INCREMENT,
		airplane_FK INT UNSIGNED NOT NULL,
		reservation_FK INT UNSIGNED NULL,
		seat_number VARCHAR(8) NOT NULL,
		seat_class ENUM('ECONOMY','BUSINESS','FIRST') NOT NULL,
		is_window TINYINT(1) NULL,
		PRIMARY KEY (id_PK),
		UNIQUE KEY uq_seats_airplane_number (airplane_FK, seat_number),
		CONSTRAINT fk_seats_airplane FOREIGN KEY (airplane_FK) REFERENCES airplanes (id_PK),
		CONSTRAINT fk_seats_reservation FOREIGN KEY (reservation_FK) REFERENCES reservations (id_PK)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// InitSchema applies the DDL above. Every statement is idempotent, so
// running it against an existing database is safe.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
