// Copyright (c) 2025 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package main

import (
	"fmt"

	"gopkg.in/yaml.v2"

	"github.com/aristanetworks/gods/logger"
)

// Config is the representation of dsbench's YAML config file.
type Config struct {
	// Workloads to run, in config order unless -parallel is given.
	Workloads []Workload
}

// Workload describes one run against a fresh container instance.
type Workload struct {
	// Name identifies the workload in the report. Defaults to the
	// container name.
	Name string

	// Container picks the container under test: vector, stack,
	// queue, map or set.
	Container string

	// Ops is the number of operations to run.
	Ops int

	// Keyspace bounds the random keys of map and set workloads and
	// the length of sequence containers.
	Keyspace int `yaml:",omitempty"`

	// Seed seeds the workload's random source. 0 means seed 1, so
	// runs are reproducible by default.
	Seed uint64 `yaml:",omitempty"`
}

const defaultKeyspace = 1024

var containers = map[string]bool{
	"vector": true,
	"stack":  true,
	"queue":  true,
	"map":    true,
	"set":    true,
}

// parseConfig parses and validates the config. Workloads without
// operations are dropped with a warning.
func parseConfig(raw []byte, log logger.Logger) (*Config, error) {
	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, fmt.Errorf("Failed to parse config: %v", err)
	}
	kept := config.Workloads[:0]
	for _, w := range config.Workloads {
		if !containers[w.Container] {
			return nil, fmt.Errorf("workload %q: unknown container %q",
				w.Name, w.Container)
		}
		if w.Ops <= 0 {
			log.Warningf("workload %q has no operations, skipping", w.Name)
			continue
		}
		if w.Name == "" {
			w.Name = w.Container
		}
		if w.Keyspace <= 0 {
			w.Keyspace = defaultKeyspace
		}
		if w.Seed == 0 {
			w.Seed = 1
		}
		kept = append(kept, w)
	}
	config.Workloads = kept
	if len(config.Workloads) == 0 {
		return nil, fmt.Errorf("config has no runnable workloads")
	}
	return config, nil
}
