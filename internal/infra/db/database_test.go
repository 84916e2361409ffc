package db

import (
	"testing"

	"github.com/contacomigo/backend/config"
)

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file::memory:",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	for _, table := range []string{"state_slices", "email_queue"} {
		if !database.DB().Migrator().HasTable(table) {
			t.Errorf("expected table %s to exist", table)
		}
	}
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	if _, err := NewConnection(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
