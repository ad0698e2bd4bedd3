package bankroll

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/uuid"
)

// This file handles the import/export format: one JSON document holding the
// whole state, in either the current multi-bankroll schema or the legacy flat
// single-bankroll schema the web app used before bankrolls were introduced.

// ErrInvalidFormat reports that an imported document matches neither the
// current nor the legacy schema.
var ErrInvalidFormat = errors.New("invalid format: document matches neither the bankroll nor the legacy schema")

// legacyState is the old flat schema: a single implicit bankroll.
type legacyState struct {
	Initial      Money         `json:"initialBankroll"`
	Transactions []Transaction `json:"transactions"`
	Challenges   []Challenge   `json:"challenges"`
}

// migrateLegacy wraps a flat legacy document into the multi-bankroll shape:
// one default bankroll carrying the old ledgers, default presentation.
func migrateLegacy(old legacyState) AppState {
	b := Bankroll{
		ID:           uuid.NewString(),
		Name:         defaultBankrollName,
		Initial:      old.Initial,
		Transactions: old.Transactions,
		Challenges:   old.Challenges,
	}
	if b.Transactions == nil {
		b.Transactions = []Transaction{}
	}
	if b.Challenges == nil {
		b.Challenges = []Challenge{}
	}
	st := DefaultState()
	st.ActiveBankrollID = b.ID
	st.Bankrolls = []Bankroll{b}
	return st
}

// Import reads a full-state document from r, accepting either schema. The
// shape is sniffed first: a `bankrolls` array selects the current schema, a
// numeric `initialBankroll` selects the legacy one (which is migrated), and
// anything else fails with ErrInvalidFormat.
func Import(r io.Reader) (AppState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return AppState{}, fmt.Errorf("could not read import document: %w", err)
	}

	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return AppState{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if v, err := jsonpath.Get("$.bankrolls", jobj); err == nil {
		if _, ok := v.([]any); !ok {
			return AppState{}, fmt.Errorf("%w: bankrolls is not an array", ErrInvalidFormat)
		}
		st, err := DecodeState(bytes.NewReader(data))
		if err != nil {
			return AppState{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return st, nil
	}

	if v, err := jsonpath.Get("$.initialBankroll", jobj); err == nil {
		if _, ok := v.(float64); !ok {
			return AppState{}, fmt.Errorf("%w: initialBankroll is not a number", ErrInvalidFormat)
		}
		var old legacyState
		if err := json.Unmarshal(data, &old); err != nil {
			return AppState{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return migrateLegacy(old), nil
	}

	return AppState{}, ErrInvalidFormat
}

// Export writes the full state to w as pretty-printed JSON.
func Export(w io.Writer, st AppState) error {
	return EncodeState(w, st)
}

// ExportFilename is the suggested name for an export file, stamped with the
// given date.
func ExportFilename(on Date) string {
	return fmt.Sprintf("gestaopro-backup-%s.json", on)
}
