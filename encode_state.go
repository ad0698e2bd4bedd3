package bankroll

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeState reads a JSON document in the current multi-bankroll schema.
func DecodeState(r io.Reader) (AppState, error) {
	var st AppState
	dec := json.NewDecoder(r)
	if err := dec.Decode(&st); err != nil {
		return AppState{}, fmt.Errorf("could not decode state document: %w", err)
	}
	if len(st.Bankrolls) == 0 {
		return AppState{}, fmt.Errorf("state document has no bankrolls")
	}
	return st, nil
}

// EncodeState writes the state as a pretty-printed JSON document.
func EncodeState(w io.Writer, st AppState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write state document: %w", err)
	}
	return nil
}
