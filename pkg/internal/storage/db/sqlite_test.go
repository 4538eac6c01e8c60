//go:build !no_sqlite

package db

import (
	"strings"
	"testing"
)

func TestWithForeignKeys(t *testing.T) {
	plain := withForeignKeys("file:reportvault.db")
	if !strings.Contains(plain, "?") || !strings.Contains(plain, "foreign_keys") {
		t.Errorf("dsn = %q, want foreign keys enabled", plain)
	}

	withParams := withForeignKeys("file:reportvault.db?cache=shared")
	if !strings.Contains(withParams, "&") || !strings.Contains(withParams, "foreign_keys") {
		t.Errorf("dsn = %q, want foreign keys appended", withParams)
	}

	if strings.Count(withParams, "?") != 1 {
		t.Errorf("dsn = %q, want single query separator", withParams)
	}
}
