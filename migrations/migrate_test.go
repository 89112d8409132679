// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, migrate := range map[string]func(*sql.DB) error{
		"server": Migrate,
		"client": MigrateClient,
	} {
		err := migrate(db)
		if err == nil {
			t.Fatalf("%s: expected error when db is nil, got nil", name)
		}
		if !strings.Contains(err.Error(), "db is nil") {
			t.Errorf("%s: expected 'db is nil' error, got: %v", name, err)
		}
	}
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	server, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(server) != 2 {
		t.Errorf("expected 2 server migrations, got %v", server)
	}

	client, err := fs.Glob(embedClientMigrations, "client/*.sql")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(client) != 1 {
		t.Errorf("expected 1 client migration, got %v", client)
	}

	for _, name := range append(server, client...) {
		data, err := fs.ReadFile(embedMigrations, name)
		if err != nil {
			data, err = fs.ReadFile(embedClientMigrations, name)
		}
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !strings.Contains(string(data), "-- +goose Up") {
			t.Errorf("%s lacks goose Up annotation", name)
		}
	}
}
