package db

import (
	"database/sql"
	"log"
)

type tableDDL struct {
	name string
	ddl  string
}

// EnsureSchema creates all tables when missing. Statements are idempotent so
// startup on an existing database is a no-op.
func EnsureSchema(conn *sql.DB) error {
	tables := []tableDDL{
		{name: "users", ddl: `CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(100) NOT NULL,
			mobile VARCHAR(20) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'user',
			signup_method VARCHAR(20) NOT NULL DEFAULT 'manual',
			last_login_at TIMESTAMP NULL,
			last_login_device VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_users_email (email),
			UNIQUE KEY uniq_users_mobile (mobile)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},

		{name: "bookings", ddl: `CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_code CHAR(36) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			email VARCHAR(100) NOT NULL,
			mobile_number VARCHAR(20) NOT NULL,
			selected_car VARCHAR(100) NOT NULL,
			pickup_date DATE NOT NULL,
			pickup_time VARCHAR(5) NOT NULL,
			pickup_location VARCHAR(255) NOT NULL,
			dropoff_location VARCHAR(255) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			reject_reason TEXT,
			user_id BIGINT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_booking_code (booking_code),
			KEY idx_bookings_user (user_id),
			KEY idx_bookings_created (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},

		{name: "carlist", ddl: `CREATE TABLE IF NOT EXISTS carlist (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			image LONGBLOB,
			passengers INT NOT NULL DEFAULT 0,
			description TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'available',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},

		{name: "bills", ddl: `CREATE TABLE IF NOT EXISTS bills (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			taxi_number VARCHAR(20) NOT NULL,
			bill_date DATE NOT NULL,
			journey_date DATE NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			from_location VARCHAR(255) NOT NULL,
			to_location VARCHAR(255) NOT NULL,
			taxi_rate DOUBLE NULL,
			per_day DOUBLE NULL,
			open_km DOUBLE NULL,
			close_km DOUBLE NULL,
			total_km DOUBLE NULL,
			total_bill DOUBLE NULL,
			extra_charges DOUBLE NULL,
			balance DOUBLE NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},

		{name: "feedback", ddl: `CREATE TABLE IF NOT EXISTS feedback (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(100) NOT NULL,
			rating INT NOT NULL,
			message TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`},
	}

	for _, t := range tables {
		fresh := !HasTable(conn, t.name)
		if _, err := conn.Exec(t.ddl); err != nil {
			return err
		}
		if fresh {
			log.Printf("[SCHEMA] created table %s", t.name)
		}
	}
	return nil
}
