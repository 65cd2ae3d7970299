package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	p, err := store.Profile("ada")
	if err != nil {
		t.Fatal(err)
	}
	if err := p.AddCoins(5); err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	stats, err := store.PlayerStats("ada")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalCoins != 5 {
		t.Errorf("total coins = %d after reopen, expected 5", stats.TotalCoins)
	}
}

func TestLastNickname(t *testing.T) {
	store := openTestStore(t)

	name, err := store.LastNickname()
	if err != nil {
		t.Fatalf("LastNickname() failed: %v", err)
	}
	if name != "" {
		t.Errorf("fresh store nickname = %q, expected empty", name)
	}

	for _, n := range []string{"ada", "grace"} {
		if err := store.SetLastNickname(n); err != nil {
			t.Fatalf("SetLastNickname(%q) failed: %v", n, err)
		}
	}
	if name, _ := store.LastNickname(); name != "grace" {
		t.Errorf("LastNickname() = %q, expected grace", name)
	}
}

func TestProfileRejectsBlankNickname(t *testing.T) {
	store := openTestStore(t)

	for _, n := range []string{"", "   ", "\t"} {
		if _, err := store.Profile(n); !errors.Is(err, ErrEmptyNickname) {
			t.Errorf("Profile(%q) error = %v, expected ErrEmptyNickname", n, err)
		}
	}

	p, err := store.Profile("  ada  ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Nickname() != "ada" {
		t.Errorf("nickname = %q, expected trimmed", p.Nickname())
	}
}
