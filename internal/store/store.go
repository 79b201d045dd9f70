package store

import "github.com/minamhq/minam-backend/internal/types"

// Store holds the five entity tables. Each table is independently atomic;
// cross-table reads (dataset plus model profile in one pipeline run) are not
// transactional, which is accepted because no update operation exists for
// either, only insert-as-create.
type Store struct {
	Providers *Table[*types.Provider]
	Models    *Table[*types.ModelProfile]
	Datasets  *Table[*types.Dataset]
	Proposals *Table[*types.Proposal]
	Products  *Table[*types.ApiProduct]
}

func New() *Store {
	return &Store{
		Providers: NewTable[*types.Provider](),
		Models:    NewTable[*types.ModelProfile](),
		Datasets:  NewTable[*types.Dataset](),
		Proposals: NewTable[*types.Proposal](),
		Products:  NewTable[*types.ApiProduct](),
	}
}
