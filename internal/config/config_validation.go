// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults are applied
// before validation runs, so failures here mean a source supplied a value
// that is actively wrong, not merely absent.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
