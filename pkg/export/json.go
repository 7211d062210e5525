package export

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/frostline/resortgen/pkg/sim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON writes the whole dataset as one indented JSON document.
func WriteJSON(ds *sim.Dataset, w io.Writer) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
