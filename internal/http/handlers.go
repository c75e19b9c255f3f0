package http

import (
	"log/slog"
	"net/http"

	"finledger/internal/core"
	applog "finledger/internal/log"
	"finledger/internal/query"
	"finledger/internal/report"
)

func (a *api) handleCreate(w http.ResponseWriter, r *http.Request) {
	email, name, ok := currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
		return
	}

	in, err := parseTransactionRequest(r, email, name)
	if err != nil {
		if core.IsValidation(err) {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	tx, err := a.ledger.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	a.invalidateReports(email)

	slog.InfoContext(r.Context(), "Transaction created",
		applog.FieldTransactionID, tx.ID,
		applog.FieldType, string(tx.Type),
		applog.FieldCategory, tx.Category,
		applog.FieldAmountCents, tx.Amount.Cents,
		applog.FieldOwner, tx.OwnerEmail,
		applog.FieldOperation, applog.OpCreate)

	writeJSON(w, http.StatusCreated, toView(tx))
}

func (a *api) handleUpdate(w http.ResponseWriter, r *http.Request) {
	email, name, ok := currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed transaction id"})
		return
	}

	in, err := parseTransactionRequest(r, email, name)
	if err != nil {
		if core.IsValidation(err) {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	tx, err := a.ledger.Update(r.Context(), id, in)
	if err != nil {
		writeError(w, err)
		return
	}
	a.invalidateReports(email)

	slog.InfoContext(r.Context(), "Transaction updated",
		applog.FieldTransactionID, tx.ID,
		applog.FieldOwner, tx.OwnerEmail,
		applog.FieldOperation, applog.OpUpdate)

	writeJSON(w, http.StatusOK, toView(tx))
}

func (a *api) handleDelete(w http.ResponseWriter, r *http.Request) {
	email, _, ok := currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed transaction id"})
		return
	}

	if err := a.ledger.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	a.invalidateReports(email)

	slog.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldTransactionID, id,
		applog.FieldOwner, email,
		applog.FieldOperation, applog.OpDelete)

	w.WriteHeader(http.StatusNoContent)
}

func (a *api) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed transaction id"})
		return
	}

	tx, err := a.ledger.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	// "Total in this category" for the owning user's records of the
	// same type.
	owned, err := a.ledger.ListByOwner(r.Context(), tx.OwnerEmail)
	if err != nil {
		writeError(w, err)
		return
	}
	total := report.CategoryTotal(owned, tx.Type, tx.Category)

	writeJSON(w, http.StatusOK, struct {
		transactionView
		CategoryTotal string `json:"categoryTotal"`
	}{toView(tx), total.String()})
}

func (a *api) handleList(w http.ResponseWriter, r *http.Request) {
	email, _, ok := currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
		return
	}

	txs, err := a.ledger.ListByOwner(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	// Default matches the original views: newest first.
	key, dir := query.ByDate, query.Desc
	if s := r.URL.Query().Get("sort"); s != "" {
		key, dir, err = query.ParseOrder(s)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
	}

	writeJSON(w, http.StatusOK, toViews(query.Sorted(txs, key, dir)))
}

func (a *api) handleReport(w http.ResponseWriter, r *http.Request) {
	email, _, ok := currentUser(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing user identity"})
		return
	}

	if a.reports != nil {
		if summary, hit := a.reports.Get(email); hit {
			writeJSON(w, http.StatusOK, toSummaryView(summary))
			return
		}
	}

	txs, err := a.ledger.ListByOwner(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	summary := report.Summarize(txs)
	if a.reports != nil {
		a.reports.Set(email, summary)
	}

	writeJSON(w, http.StatusOK, toSummaryView(summary))
}

func (a *api) handleCategories(w http.ResponseWriter, r *http.Request) {
	typ := core.TransactionType(r.URL.Query().Get("type"))
	cats, err := a.catalog.Categories(typ)
	if err != nil {
		writeError(w, err)
		return
	}
	def, err := a.catalog.DefaultCategory(typ)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type":       string(typ),
		"categories": cats,
		"default":    def,
	})
}

func (a *api) invalidateReports(ownerEmail string) {
	if a.reports != nil {
		a.reports.Delete(ownerEmail)
	}
}
