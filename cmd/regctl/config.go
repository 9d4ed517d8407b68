package main

import (
	"fmt"
	"os"

	"github.com/winelayer/regsrv/pkg/registry"
	"github.com/winelayer/regsrv/pkg/regtypes"
	"gopkg.in/yaml.v3"
)

// BootstrapConfig is the optional --config manifest: initial saving levels
// and a set of snapshot files to load under named roots at startup
// (SPEC_FULL.md §2 "the ambient configuration layer the distilled spec
// omits").
type BootstrapConfig struct {
	CurrentLevel  int               `yaml:"current_level"`
	SavingLevel   int               `yaml:"saving_level"`
	SavingVersion int               `yaml:"saving_version"`
	Roots         map[string]string `yaml:"roots"`
}

func loadConfig(path string) (*BootstrapConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &BootstrapConfig{SavingVersion: 1}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// buildRegistry constructs a Registry and, if configPath is set, applies
// its levels and loads each configured root's snapshot file into the tree.
func buildRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if configPath == "" {
		return reg, nil
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	reg.SetRegistryLevels(cfg.CurrentLevel, cfg.SavingLevel)
	reg.SetSavingVersion(cfg.SavingVersion)

	for rootName, file := range cfg.Roots {
		id, ok := regtypes.RootIDByName(rootName)
		if !ok {
			return nil, fmt.Errorf("config: unknown root %q", rootName)
		}
		h, err := reg.OpenRoot(id, regtypes.KeySetValue|regtypes.KeyCreateSubKey)
		if err != nil {
			return nil, fmt.Errorf("config: open root %q: %w", rootName, err)
		}
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("config: open snapshot %q: %w", file, err)
		}
		err = reg.LoadRegistry(h, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("config: load snapshot %q under %s: %w", file, rootName, err)
		}
	}
	return reg, nil
}

// resolveRoot opens the root named by name with access, for subcommands
// that take a --root flag.
func resolveRoot(reg *registry.Registry, name string, access regtypes.AccessMask) (registry.Handle, error) {
	printVerbose("Opening root: %s\n", name)

	id, ok := regtypes.RootIDByName(name)
	if !ok {
		return 0, fmt.Errorf("unknown root %q", name)
	}
	return reg.OpenRoot(id, access)
}
