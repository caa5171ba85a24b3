package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"pressbrake/internal/domain"
)

// MachinesConfig is the on-disk machine catalog.
type MachinesConfig struct {
	DefaultMachine string                  `json:"default_machine"`
	Machines       []domain.MachineProfile `json:"machines"`
}

var (
	cfg      *MachinesConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadMachinesConfig loads the machine catalog from the given path.
func LoadMachinesConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read machines config: %w", err)
			return
		}

		c, err := parseMachinesConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

func parseMachinesConfig(data []byte) (*MachinesConfig, error) {
	var c MachinesConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal machines config: %w", err)
	}
	return &c, nil
}

// GetMachinesConfig returns the global machine catalog.
func GetMachinesConfig() *MachinesConfig {
	return cfg
}

// GetProfile returns the machine profile for the given ID, or the default
// profile if the ID is empty or unknown.
func GetProfile(machineID string) domain.MachineProfile {
	if cfg == nil {
		return fallbackProfile()
	}

	target := machineID
	if target == "" {
		target = cfg.DefaultMachine
	}

	for _, m := range cfg.Machines {
		if m.ID == target {
			return m
		}
	}

	// Fallback to the default machine if the specific ID is not found.
	for _, m := range cfg.Machines {
		if m.ID == cfg.DefaultMachine {
			return m
		}
	}

	return fallbackProfile()
}

// fallbackProfile keeps the match handler functional when no catalog loaded.
func fallbackProfile() domain.MachineProfile {
	return domain.MachineProfile{
		ID:           "standard",
		FloorAngle:   45,
		BendSpeed:    30,
		TargetAngles: []int{90, 105, 120, 135},
		MaxRounds:    10,
	}
}
