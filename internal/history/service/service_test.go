package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dshowevents/contratia/internal/history/domain"
)

func newTestService(t *testing.T, max int) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Entry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return NewService(db, node, zap.NewNop(), max)
}

func TestAddAndListNewestFirst(t *testing.T) {
	svc := newTestService(t, 50)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Add(ctx, AddInput{
			ContractNumber: fmt.Sprintf("DSE-2026-%03d", i),
			Kind:           "music",
			ClientName:     "Ana Rivera",
			EventDate:      "2026-06-20",
			Links:          map[string]string{"doc_url": "https://docs.example/" + fmt.Sprint(i)},
		})
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}
	if entries[0].ContractNumber != "DSE-2026-003" {
		t.Fatalf("first entry = %s, want newest", entries[0].ContractNumber)
	}
	if entries[2].ContractNumber != "DSE-2026-001" {
		t.Fatalf("last entry = %s, want oldest", entries[2].ContractNumber)
	}
}

func TestCapEvictsOldest(t *testing.T) {
	svc := newTestService(t, 5)
	ctx := context.Background()

	for i := 1; i <= 8; i++ {
		_, err := svc.Add(ctx, AddInput{
			ContractNumber: fmt.Sprintf("DSE-2026-%03d", i),
			Kind:           "booth",
			ClientName:     "Cliente",
			EventDate:      "2026-07-01",
			Links:          map[string]string{},
		})
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}

	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len = %d, want cap of 5", len(entries))
	}
	if entries[0].ContractNumber != "DSE-2026-008" {
		t.Fatalf("newest = %s, want 008", entries[0].ContractNumber)
	}
	if entries[4].ContractNumber != "DSE-2026-004" {
		t.Fatalf("oldest survivor = %s, want 004", entries[4].ContractNumber)
	}
}

func TestRemoveAndClear(t *testing.T) {
	svc := newTestService(t, 50)
	ctx := context.Background()

	first, err := svc.Add(ctx, AddInput{ContractNumber: "DSE-2026-001", Kind: "dj", Links: map[string]string{}})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, AddInput{ContractNumber: "DSE-2026-002", Kind: "dj", Links: map[string]string{}}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Remove(ctx, first.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	entries, _ := svc.List(ctx)
	if len(entries) != 1 || entries[0].ContractNumber != "DSE-2026-002" {
		t.Fatalf("after remove: %+v", entries)
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, _ = svc.List(ctx)
	if len(entries) != 0 {
		t.Fatalf("after clear len = %d, want 0", len(entries))
	}
}
