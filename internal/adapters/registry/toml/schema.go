package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int           `toml:"version"`
	Spreadsheets []aliasSchema `toml:"spreadsheets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported spreadsheets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type aliasSchema struct {
	Name  string `toml:"name"`
	ID    string `toml:"id"`
	Sheet string `toml:"sheet,omitempty"`
}
