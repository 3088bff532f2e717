package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrUnsupportedDataset is returned for JSON that is neither a bare array of
// listings nor an object with a "data" array.
var ErrUnsupportedDataset = errors.New("catalog: unsupported dataset shape")

type envelope struct {
	Data *[]RawRecord `json:"data"`
}

// ReadJSON decodes listings from r.
func ReadJSON(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading dataset: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrUnsupportedDataset
	}

	switch data[0] {
	case '[':
		var raws []RawRecord
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("catalog: parsing dataset: %w", err)
		}
		return raws, nil
	case '{':
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("catalog: parsing dataset: %w", err)
		}
		if env.Data == nil {
			return nil, ErrUnsupportedDataset
		}
		return *env.Data, nil
	}
	return nil, ErrUnsupportedDataset
}

// LoadFile reads and parses a dataset file.
func LoadFile(path string) ([]RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
