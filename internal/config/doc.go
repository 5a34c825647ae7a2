// Package config manages user-level settings stored at ~/.manifold/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default build-phase kind and the default scheme visibility.
package config
