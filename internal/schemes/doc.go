// Package schemes persists generated schemes as YAML artifacts under the
// project directory. Shared schemes land in schemes/shared/ (intended to
// be version-controlled); private ones in schemes/local/ (per checkout).
package schemes
