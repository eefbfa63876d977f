package registry

import (
	"fmt"
)

// Type-safe extraction helpers for the ProberConfig.Custom map used by prober
// factories. They remove the repeated nil checks and type assertions.

// GetStringConfig extracts a string value from custom config map with a default fallback.
// Returns the default value if the map is nil, the key is missing, the value is
// not a string or it is empty.
func GetStringConfig(custom map[string]interface{}, key, defaultValue string) string {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(string); ok && val != "" {
		return val
	}

	return defaultValue
}

// GetIntConfig extracts an int value from custom config map with a default fallback.
// Handles both int and float64 (YAML and JSON decoders may produce either).
func GetIntConfig(custom map[string]interface{}, key string, defaultValue int) int {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(int); ok {
		return val
	}

	if val, ok := custom[key].(float64); ok {
		return int(val)
	}

	return defaultValue
}

// GetBoolConfig extracts a bool value from custom config map with a default fallback.
func GetBoolConfig(custom map[string]interface{}, key string, defaultValue bool) bool {
	if custom == nil {
		return defaultValue
	}

	if val, ok := custom[key].(bool); ok {
		return val
	}

	return defaultValue
}

// ValidateIntRange validates that an int field is within [min, max].
func ValidateIntRange(fieldName string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", fieldName, min, max, value)
	}
	return nil
}
