// Package config holds the explicit configuration of a generation run.
//
// Every size, path, and toolchain setting that the original benchmark script
// kept in module-level constants lives in Config instead, so independent runs
// (and tests) never share output directories.
//
// Configuration files may be written in CUE, YAML, or HCL; Load picks the
// decoder by file extension. Fields omitted from a file keep their defaults.
// All formats reject unknown fields.
package config
