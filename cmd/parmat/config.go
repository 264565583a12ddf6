package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	lg "github.com/Andrej220/go-utils/zlog"
	"gopkg.in/yaml.v3"

	pm "github.com/azargarov/parmat"
)

// fileConfig is the YAML form of pm.Options.
//
//	workers: 8
//	queue_size: 32
//	pin_workers: false
//	wait:
//	  initial: 500ms
//	  max: 10s
type fileConfig struct {
	Workers    int  `yaml:"workers"`
	QueueSize  int  `yaml:"queue_size"`
	PinWorkers bool `yaml:"pin_workers"`
	Wait       struct {
		Initial string `yaml:"initial"`
		Max     string `yaml:"max"`
	} `yaml:"wait"`
}

// loadOptions reads pool options from path. An empty path yields zero
// Options, which the library fills with defaults.
func loadOptions(ctx context.Context, path string) (pm.Options, error) {
	if path == "" {
		return pm.Options{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return pm.Options{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return pm.Options{}, fmt.Errorf("config %s: %w", path, err)
	}

	opts, err := fc.options()
	if err != nil {
		return pm.Options{}, fmt.Errorf("config %s: %w", path, err)
	}
	lg.FromContext(ctx).Info("config loaded", lg.String("path", path), lg.Int("workers", opts.Workers))
	return opts, nil
}

func (fc fileConfig) options() (pm.Options, error) {
	opts := pm.Options{
		Workers:    fc.Workers,
		QueueSize:  fc.QueueSize,
		PinWorkers: fc.PinWorkers,
	}
	var err error
	if opts.Wait.Initial, err = parseDuration(fc.Wait.Initial); err != nil {
		return opts, fmt.Errorf("wait.initial: %w", err)
	}
	if opts.Wait.Max, err = parseDuration(fc.Wait.Max); err != nil {
		return opts, fmt.Errorf("wait.max: %w", err)
	}
	return opts, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
