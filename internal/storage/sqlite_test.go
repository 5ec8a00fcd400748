package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVLoadAbsent(t *testing.T) {
	kv := newTestKV(t)

	_, ok, err := kv.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("absent key must report ok=false")
	}
}

func TestSQLiteKVSaveLoad(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	want := []byte(`[{"id":1,"type":"income","category":"Salary","amount":3500,"date":"2025-02-01"}]`)
	if err := kv.Save(ctx, "transactions", want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := kv.Load(ctx, "transactions")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("saved key must report ok=true")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load = %q, want %q", got, want)
	}
}

func TestSQLiteKVSaveReplaces(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Save(ctx, "budgets", []byte("old")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := kv.Save(ctx, "budgets", []byte("new")); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, _, err := kv.Load(ctx, "budgets")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("Load = %q, want %q", got, "new")
	}
}
