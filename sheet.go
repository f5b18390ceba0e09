package spritemesh

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Sheet is a texture's import settings together with the sprites cut from it.
type Sheet struct {
	Import  ImportSettings `json:"import"`
	Sprites []*Sprite      `json:"sprites"`
}

func ReadSheet(r io.Reader) (*Sheet, error) {
	var s Sheet
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("error decoding sprite sheet: %w", err)
	}
	for i, sp := range s.Sprites {
		if sp == nil {
			return nil, invalidInputf("sprite sheet entry %d is null", i)
		}
	}
	return &s, nil
}

func WriteSheet(w io.Writer, s *Sheet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func LoadSheetFile(fileName string) (*Sheet, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open sprite sheet %s: %w", fileName, err)
	}
	defer file.Close()

	s, err := ReadSheet(file)
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", fileName, err)
	}
	return s, nil
}

func SaveSheetFile(fileName string, s *Sheet) error {
	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("could not create sprite sheet %s: %w", fileName, err)
	}
	defer file.Close()

	if err := WriteSheet(file, s); err != nil {
		return fmt.Errorf("error writing sprite sheet %s: %w", fileName, err)
	}
	return file.Close()
}
