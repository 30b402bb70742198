// Package config loads the shared configuration for rrepo and rdev.
//
// Configuration lives in a single optional TOML file, by default at
// ~/.config/rkit/config.toml:
//
//	rscript = "/opt/R/4.4.1/bin/Rscript"
//	rscript_args = "--vanilla"
//
//	[repo]
//	default_path = "/srv/cran"
//
// A missing file is not an error; every field has a usable default.
// The RKIT_RSCRIPT environment variable overrides the interpreter path
// from the file.
package config
