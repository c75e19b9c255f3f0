package ledger

import (
	"errors"

	"finledger/internal/catalog"
	"finledger/internal/core"
)

// Validate checks tx against the field-level rules and the category
// catalog. The category must belong to the catalog's set for tx.Type: a
// type/category mismatch is rejected outright, never persisted.
func Validate(cat *catalog.Catalog, tx core.Transaction) error {
	var fields []string
	if err := tx.Validate(); err != nil {
		var ve *core.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		fields = ve.Fields
	}
	if tx.Type.IsValid() && !cat.Valid(tx.Type, tx.Category) {
		fields = append(fields, core.FieldCategory)
	}
	if len(fields) > 0 {
		return &core.ValidationError{Fields: fields}
	}
	return nil
}
