package save

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "slot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty Load err = %v, want ErrNotFound", err)
	}
	if err := s.Save(ctx, "slot", []byte(`{"level":2}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "slot", []byte(`{"level":3}`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(ctx, "slot")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"level":3}` {
		t.Fatalf("Load = %s", got)
	}
	if err := s.Delete(ctx, "slot"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, "slot"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Delete err = %v", err)
	}
	if err := s.Delete(ctx, "slot"); err != nil {
		t.Fatalf("deleting a missing slot should succeed, got %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "saves")))
}

func TestFileStore_SlotNamesStayInDir(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir)
	if got := s.path("../escape"); filepath.Dir(got) != dir {
		t.Fatalf("slot path %s escaped %s", got, dir)
	}
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "saves.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)

	hist, err := s.History(context.Background(), "slot", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 {
		t.Fatalf("history has %d rows, want 2", len(hist))
	}
	if hist[0].ID == hist[1].ID || hist[0].ID == "" {
		t.Fatalf("history ids %q %q", hist[0].ID, hist[1].ID)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, closeFn, err := Open("file", dir)
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Fatalf("file backend gave %T", s)
	}
	closeFn()

	s, closeFn, err = Open("sqlite", dir)
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("sqlite backend gave %T", s)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, _, err := Open("floppy", dir); err == nil {
		t.Fatal("unknown backend accepted")
	}
}
