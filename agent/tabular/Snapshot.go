package tabular

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/OverKoder/Jormungandr/state"
	"gonum.org/v1/gonum/mat"
)

// MarshalBinary encodes the action value table in the gonum mat.Dense
// binary format
func (t *Agent) MarshalBinary() ([]byte, error) {
	return t.weights.MarshalBinary()
}

// UnmarshalBinary decodes an action value table produced by
// MarshalBinary, replacing the current table in place so that anything
// sharing the table sees the new values
func (t *Agent) UnmarshalBinary(data []byte) error {
	var weights mat.Dense
	if err := weights.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("unmarshalBinary: %v", err)
	}
	if t.weights == nil {
		return t.SetWeights(&weights)
	}

	if r, c := weights.Dims(); r != state.NumStates || c != state.NumActions {
		return fmt.Errorf("unmarshalBinary: table must be %dx%d, got %dx%d",
			state.NumStates, state.NumActions, r, c)
	}
	t.weights.Copy(&weights)
	return nil
}

// GobEncode implements the gob.GobEncoder interface
func (t *Agent) GobEncode() ([]byte, error) {
	return t.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface
func (t *Agent) GobDecode(data []byte) error {
	return t.UnmarshalBinary(data)
}

// Save writes a snapshot of the action value table to a file
func (t *Agent) Save(filename string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return fmt.Errorf("save: could not encode table: %v", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// Load replaces the action value table with a snapshot written by Save
func (t *Agent) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load: %v", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(t); err != nil {
		return fmt.Errorf("load: could not decode table from %v: %v",
			filename, err)
	}
	return nil
}
