package kbart

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// The provider registry starts with the built-in tables and grows through
// RegisterProvider. KBART invites providers to define their own extension
// fields, so the built-ins cannot be exhaustive.
var (
	providersMu    sync.RWMutex
	providerFields = map[string][]string{}
)

func init() {
	for name, fields := range builtinProviderFields {
		providerFields[name] = fields
	}
}

// RegisterProvider adds a provider extension table for use in schema
// composition. The name must be new: built-in and previously registered
// tables cannot be redefined, since downstream systems depend on their
// exact field sequences.
func RegisterProvider(name string, fields []string) error {
	if name == "" {
		return fmt.Errorf("provider name must not be empty")
	}
	if len(fields) == 0 {
		return fmt.Errorf("provider %q must define at least one field", name)
	}

	providersMu.Lock()
	defer providersMu.Unlock()

	if _, exists := providerFields[name]; exists {
		return fmt.Errorf("provider %q is already defined", name)
	}
	providerFields[name] = append([]string(nil), fields...)
	return nil
}

// LoadProviders registers provider extension tables from a YAML document
// mapping each provider name to its ordered field-name sequence:
//
//	jstor:
//	  - collection_id
//	  - collection_name
//
// Entries are registered in name order; the first failure stops loading.
func LoadProviders(r io.Reader) error {
	var tables map[string][]string
	if err := yaml.NewDecoder(r).Decode(&tables); err != nil {
		return fmt.Errorf("failed to decode provider tables: %w", err)
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := RegisterProvider(name, tables[name]); err != nil {
			return err
		}
	}
	return nil
}
