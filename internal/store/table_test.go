package store

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/minamhq/minam-backend/internal/types"
)

func TestTableInsertGet(t *testing.T) {
	tbl := NewTable[*types.Provider]()
	id := uuid.New()

	if _, ok := tbl.Get(id); ok {
		t.Fatalf("Get on empty table reported found")
	}

	tbl.Insert(id, &types.Provider{ID: id, Name: "acme"})
	got, ok := tbl.Get(id)
	if !ok {
		t.Fatalf("Get after Insert reported not found")
	}
	if got.Name != "acme" {
		t.Fatalf("unexpected value: got=%q want=%q", got.Name, "acme")
	}
}

func TestTableInsertOverwrites(t *testing.T) {
	tbl := NewTable[*types.Provider]()
	id := uuid.New()

	tbl.Insert(id, &types.Provider{ID: id, Name: "first"})
	tbl.Insert(id, &types.Provider{ID: id, Name: "second"})

	got, ok := tbl.Get(id)
	if !ok {
		t.Fatalf("Get after overwrite reported not found")
	}
	if got.Name != "second" {
		t.Fatalf("overwrite not applied: got=%q", got.Name)
	}
	if tbl.Len() != 1 {
		t.Fatalf("unexpected length after overwrite: got=%d want=1", tbl.Len())
	}
}

func TestTableListSnapshot(t *testing.T) {
	tbl := NewTable[*types.Provider]()
	want := 10
	for i := 0; i < want; i++ {
		id := uuid.New()
		tbl.Insert(id, &types.Provider{ID: id})
	}

	snapshot := tbl.List()
	if len(snapshot) != want {
		t.Fatalf("unexpected snapshot size: got=%d want=%d", len(snapshot), want)
	}

	// Mutating the snapshot slice must not affect the table.
	snapshot = snapshot[:0]
	_ = snapshot
	if tbl.Len() != want {
		t.Fatalf("table changed after snapshot mutation: got=%d want=%d", tbl.Len(), want)
	}
}

func TestTableConcurrentAccess(t *testing.T) {
	tbl := NewTable[*types.Provider]()
	const writers = 8
	const perWriter = 100

	ids := make([][]uuid.UUID, writers)
	for w := range ids {
		ids[w] = make([]uuid.UUID, perWriter)
		for i := range ids[w] {
			ids[w][i] = uuid.New()
		}
	}

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		w := w
		wg.Add(2)
		go func() {
			defer wg.Done()
			for _, id := range ids[w] {
				tbl.Insert(id, &types.Provider{ID: id})
			}
		}()
		go func() {
			defer wg.Done()
			for _, id := range ids[w] {
				tbl.Get(id)
				tbl.List()
			}
		}()
	}
	wg.Wait()

	if got, want := tbl.Len(), writers*perWriter; got != want {
		t.Fatalf("unexpected entry count after concurrent writes: got=%d want=%d", got, want)
	}
	for w := 0; w < writers; w++ {
		for _, id := range ids[w] {
			if _, ok := tbl.Get(id); !ok {
				t.Fatalf("entry %s missing after concurrent writes", id)
			}
		}
	}
}

func TestStoreHasIndependentTables(t *testing.T) {
	st := New()
	id := uuid.New()
	st.Providers.Insert(id, &types.Provider{ID: id})

	if st.Datasets.Len() != 0 || st.Models.Len() != 0 || st.Proposals.Len() != 0 || st.Products.Len() != 0 {
		t.Fatalf("insert into one table leaked into another")
	}
}
