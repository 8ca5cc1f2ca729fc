// Package config is the JSON configuration shared by the binaries.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

type Config struct {
	DBPath string `json:"db-path"`
	Listen string `json:"listen"`
	// RideCost is the base cost that piece price modifiers scale.
	RideCost int32 `json:"ride-cost"`
	// Velocity (16.16 fixed point) used for force estimates.
	Velocity   int32 `json:"velocity"`
	SampleStep int16 `json:"sample-step"`
}

func Default() Config {
	return Config{
		DBPath:     "./designs.db",
		Listen:     "localhost:8080",
		RideCost:   100,
		Velocity:   0x50000,
		SampleStep: 8,
	}
}

// Load reads the file at path over Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	err = c.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.DBPath == "":
		return errors.New("db-path is empty")
	case c.RideCost < 0:
		return fmt.Errorf("ride-cost %d is negative", c.RideCost)
	case c.SampleStep <= 0:
		return fmt.Errorf("sample-step %d is not positive", c.SampleStep)
	}
	return nil
}
