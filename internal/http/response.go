package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"finledger/internal/core"
	applog "finledger/internal/log"
	"finledger/internal/report"
)

// transactionView is the JSON shape of a transaction.
type transactionView struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	AmountCents int64  `json:"amountCents"`
	Description string `json:"description"`
	Date        string `json:"date"`
	OwnerEmail  string `json:"ownerEmail"`
	OwnerName   string `json:"ownerName,omitempty"`
}

func toView(tx core.Transaction) transactionView {
	return transactionView{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Amount:      tx.Amount.String(),
		AmountCents: tx.Amount.Cents,
		Description: tx.Description,
		Date:        tx.Date.String(),
		OwnerEmail:  tx.OwnerEmail,
		OwnerName:   tx.OwnerName,
	}
}

func toViews(txs []core.Transaction) []transactionView {
	out := make([]transactionView, len(txs))
	for i, tx := range txs {
		out[i] = toView(tx)
	}
	return out
}

type categoryAmountView struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type summaryView struct {
	TotalIncome  string               `json:"totalIncome"`
	TotalExpense string               `json:"totalExpense"`
	Balance      string               `json:"balance"`
	ByCategory   []categoryAmountView `json:"expenseByCategory"`
}

func toSummaryView(s report.Summary) summaryView {
	byCat := make([]categoryAmountView, len(s.ByCategory))
	for i, ca := range s.ByCategory {
		byCat[i] = categoryAmountView{Category: ca.Name, Amount: ca.Amount.String()}
	}
	return summaryView{
		TotalIncome:  s.TotalIncome.String(),
		TotalExpense: s.TotalExpense.String(),
		Balance:      s.Balance.String(),
		ByCategory:   byCat,
	}
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", applog.FieldError, err)
	}
}

// writeError maps the core error taxonomy onto HTTP statuses: validation
// failures are 422, missing records 404, catalog misuse 400, everything
// else 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *core.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Fields: ve.Fields})
		return
	}
	var nf *core.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nf.Error()})
		return
	}
	var ite *core.InvalidTypeError
	if errors.As(err, &ite) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ite.Error()})
		return
	}
	slog.Error("Internal error", applog.FieldError, err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
