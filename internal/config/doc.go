// Package config provides configuration types and loading for vlsm-ctl.
//
// # Configuration Files
//
// The package handles two types of files:
//
//   - Config: user settings loaded from <user config dir>/vlsm-ctl/config.toml
//   - Plan: saved allocation inputs in <user config dir>/vlsm-ctl/plans/*.toml (or *.json)
//
// # User Configuration
//
//	format = "table"        # text, table or json
//	color = true
//	plans_dir = "/srv/plans" # optional override
//
//	[logging]
//	verbose = false
//	json = false
//
// A missing config file is not an error; defaults apply.
//
// # Plans
//
// A plan names a base network and the demands to place in it:
//
//	name = "campus"
//	network = "192.168.0.0/24"
//
//	[[demands]]
//	name = "A"
//	hosts = 100
//
// Plans only hold input. Allocation results are computed on every run and
// never written back. Paths.HistoryDir holds the per-plan event history.
//
// # Validation
//
// Config and Plan implement Validate(). Loading functions validate after
// parsing, and named plan lookups are confined to the plans directory.
package config
