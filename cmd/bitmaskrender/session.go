package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/algo-bitmask/dsp/effects/bitmask"
)

func loadSession(e engine, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s, err := bitmask.UnmarshalState(data)
	if err != nil {
		return err
	}

	if err := e.Restore(s); err != nil {
		return err
	}

	log.Printf("loaded %s (version %s)", path, s.Version)

	return nil
}

func saveSession(e engine, path string) error {
	data, err := bitmask.MarshalState(e.State())
	if err != nil {
		return err
	}

	if err := os.WriteFile(path+".tmp", data, 0o644); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if err := os.Rename(path+".tmp", path); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	log.Printf("saved %s", path)

	return nil
}
