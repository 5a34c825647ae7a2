package manifest

import "sort"

// BuildConfiguration is a named key/value settings scope ("Debug",
// "Release", ...). Keys and values are opaque strings; the semantics of
// particular build-setting keys are a downstream concern.
type BuildConfiguration struct {
	name   string
	values map[string]string
}

// Name returns the configuration's name.
func (c *BuildConfiguration) Name() string { return c.name }

// Apply sets key = value, last write wins. Re-applying the same value
// leaves the scope observably unchanged.
func (c *BuildConfiguration) Apply(key, value string) {
	c.values[key] = value
}

// Remove deletes key if present; no-op otherwise.
func (c *BuildConfiguration) Remove(key string) {
	delete(c.values, key)
}

// Get returns the value for key and whether it is set.
func (c *BuildConfiguration) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of settings in the scope.
func (c *BuildConfiguration) Len() int { return len(c.values) }

// Keys returns the setting keys in sorted order.
func (c *BuildConfiguration) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConfigurationSet holds the named configuration scopes of a project or a
// target. Scopes are created lazily on first use.
type ConfigurationSet struct {
	configs []*BuildConfiguration
	byName  map[string]*BuildConfiguration
}

func newConfigurationSet() *ConfigurationSet {
	return &ConfigurationSet{byName: make(map[string]*BuildConfiguration)}
}

// Config returns the scope with the given name, creating it if absent.
func (s *ConfigurationSet) Config(name string) *BuildConfiguration {
	c := s.byName[name]
	if c == nil {
		c = &BuildConfiguration{name: name, values: make(map[string]string)}
		s.configs = append(s.configs, c)
		s.byName[name] = c
	}
	return c
}

// Lookup returns the scope with the given name without creating it.
func (s *ConfigurationSet) Lookup(name string) *BuildConfiguration {
	return s.byName[name]
}

// All returns the scopes in creation order.
func (s *ConfigurationSet) All() []*BuildConfiguration { return s.configs }

// ApplyAll applies every key/value pair from settings to the scope. The
// pairs are applied in sorted key order; no individual assignment can
// fail, so the batch has no partial-failure mode.
func (c *BuildConfiguration) ApplyAll(settings map[string]string) {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.values[k] = settings[k]
	}
}
