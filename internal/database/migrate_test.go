// Package database provides connection setup for MariaDB and Redis.
// This file validates migration SQL files to catch schema mismatches early.
package database

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// migrationsDir returns the absolute path to db/migrations/ from the project root.
func migrationsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	// thisFile is internal/database/migrate_test.go, project root is two dirs up.
	projectRoot := filepath.Join(filepath.Dir(thisFile), "..", "..")
	dir := filepath.Join(projectRoot, "db", "migrations")
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("migrations directory not found at %s: %v", dir, err)
	}
	return dir
}

// TestMigrations_UpDownPairs ensures every .up.sql has a matching .down.sql.
func TestMigrations_UpDownPairs(t *testing.T) {
	dir := migrationsDir(t)
	upFiles, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing up files: %v", err)
	}
	if len(upFiles) == 0 {
		t.Fatal("no migration files found")
	}

	for _, up := range upFiles {
		down := strings.Replace(up, ".up.sql", ".down.sql", 1)
		if _, err := os.Stat(down); err != nil {
			t.Errorf("missing down migration for %s", filepath.Base(up))
		}
	}
}

// TestMigrations_SchemaColumns scans CREATE TABLE statements and validates
// that the columns the repositories select actually exist. Catches column
// renames that would only surface as Error 1054 at runtime.
func TestMigrations_SchemaColumns(t *testing.T) {
	required := map[string][]string{
		"users":  {"id", "name", "email", "password_hash", "created_at"},
		"cities": {"id", "city_name", "country", "emoji", "date", "notes", "lat", "lng", "client_id", "created_at", "updated_at"},
	}

	dir := migrationsDir(t)
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing migration files: %v", err)
	}

	createPattern := regexp.MustCompile(`(?is)CREATE TABLE (\w+)\s*\((.*?)\)\s*ENGINE`)

	defined := make(map[string]string)
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}
		for _, match := range createPattern.FindAllStringSubmatch(string(data), -1) {
			defined[match[1]] = match[2]
		}
	}

	for table, columns := range required {
		body, ok := defined[table]
		if !ok {
			t.Errorf("no CREATE TABLE found for %s", table)
			continue
		}
		for _, col := range columns {
			colPattern := regexp.MustCompile(`(?im)^\s*` + col + `\s`)
			if !colPattern.MatchString(body) {
				t.Errorf("table %s is missing column %s", table, col)
			}
		}
	}
}

// TestMigrations_UniqueEmail ensures the users table keeps its unique email
// constraint. Signup's duplicate detection depends on Error 1062 from it.
func TestMigrations_UniqueEmail(t *testing.T) {
	dir := migrationsDir(t)
	files, err := filepath.Glob(filepath.Join(dir, "*.up.sql"))
	if err != nil {
		t.Fatalf("globbing migration files: %v", err)
	}

	found := false
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("reading %s: %v", f, err)
		}
		content := strings.ToUpper(string(data))
		if strings.Contains(content, "USERS") && strings.Contains(content, "UNIQUE") && strings.Contains(content, "EMAIL") {
			found = true
		}
	}
	if !found {
		t.Error("users.email has no UNIQUE constraint in any migration")
	}
}
