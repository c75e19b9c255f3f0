package ledger

import (
	"context"
	"sync"
	"testing"
)

// Mutations are serialized and readers always see a consistent snapshot:
// every listed record satisfies the invariants that held at write time.
func TestConcurrentMutationsAndReads(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				tx, err := s.Create(ctx, validInput())
				if err != nil {
					t.Errorf("create: %v", err)
					return
				}
				if i%3 == 0 {
					if err := s.Delete(ctx, tx.ID); err != nil {
						t.Errorf("delete: %v", err)
						return
					}
				}
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				list, err := s.ListByOwner(ctx, "a@x.com")
				if err != nil {
					t.Errorf("list: %v", err)
					return
				}
				for _, tx := range list {
					if tx.Amount.Cents <= 0 || tx.ID == 0 {
						t.Errorf("torn record observed: %+v", tx)
						return
					}
				}
			}
		}()
	}
	wg.Wait()

	list, _ := s.ListByOwner(ctx, "a@x.com")
	seen := make(map[int64]bool, len(list))
	for _, tx := range list {
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d", tx.ID)
		}
		seen[tx.ID] = true
	}
}
