package main

import (
	"fmt"
	"os"

	json "github.com/bytedance/sonic"

	"gridsheet/contracts"
)

// SaveSnapshotFile writes the persisted sheet format: a JSON object
// mapping address strings to raw content strings.
func SaveSnapshotFile(path string, snapshot contracts.SheetSnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func LoadSnapshotFile(path string) (contracts.SheetSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	snapshot := contracts.SheetSnapshot{}
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	return snapshot, nil
}
