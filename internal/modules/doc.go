// Package modules contains the self-contained application features.
//
// Each subdirectory is a module that implements the `module.Module` interface
// and is mounted under /api/<name>. Modules are listed in
// `internal/app/modules.go` and booted by the server at startup.
package modules
