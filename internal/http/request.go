package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"finledger/internal/core"
	"finledger/internal/ledger"
)

// transactionRequest is the JSON body for create and update. Amount and
// date travel as strings and are parsed here; parse failures become
// ValidationError fields so callers get the same taxonomy for malformed
// and invalid input.
type transactionRequest struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// currentUser extracts the identity supplied by the auth collaborator.
func currentUser(r *http.Request) (email, name string, ok bool) {
	email = strings.TrimSpace(r.Header.Get(HeaderUserEmail))
	name = strings.TrimSpace(r.Header.Get(HeaderUserName))
	return email, name, email != ""
}

// parseTransactionRequest decodes and converts the request body into a
// store input. Unparseable amount or date are reported as field
// violations; deeper validation happens in the store.
func parseTransactionRequest(r *http.Request, ownerEmail, ownerName string) (ledger.TransactionInput, error) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return ledger.TransactionInput{}, err
	}

	in := ledger.TransactionInput{
		Type:        core.TransactionType(strings.TrimSpace(req.Type)),
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		OwnerEmail:  ownerEmail,
		OwnerName:   ownerName,
	}

	var fields []string
	amount, err := core.ParseAmount(req.Amount)
	if err != nil {
		fields = append(fields, core.FieldAmount)
	}
	in.Amount = amount

	date, err := core.ParseDate(req.Date)
	if err != nil {
		fields = append(fields, core.FieldDate)
	}
	in.Date = date

	if len(fields) > 0 {
		return ledger.TransactionInput{}, &core.ValidationError{Fields: fields}
	}
	return in, nil
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
