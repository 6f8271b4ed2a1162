// Package config manages game configuration files.
//
// The Manager loads named JSON configurations from a directory, validates
// them through the engine package, and caches the results. A default
// configuration is resolved at startup: configs/classic.json when present,
// the first valid file otherwise, falling back to the engine's built-in
// default so the game always starts even with an empty directory.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cfg, err := manager.LoadConfig("big")
//	if err != nil {
//		cfg = manager.GetDefault()
//	}
package config
