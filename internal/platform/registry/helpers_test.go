package registry

import (
	"testing"

	"netsweep/internal/testutil"
)

func TestGetStringConfig(t *testing.T) {
	tests := []struct {
		name   string
		custom map[string]interface{}
		want   string
	}{
		{"nil map", nil, "ping"},
		{"missing key", map[string]interface{}{}, "ping"},
		{"wrong type", map[string]interface{}{"ping_path": 42}, "ping"},
		{"empty string", map[string]interface{}{"ping_path": ""}, "ping"},
		{"set", map[string]interface{}{"ping_path": "/usr/bin/ping"}, "/usr/bin/ping"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, GetStringConfig(tt.custom, "ping_path", "ping"), tt.want, "string config")
		})
	}
}

func TestGetIntConfig(t *testing.T) {
	tests := []struct {
		name   string
		custom map[string]interface{}
		want   int
	}{
		{"nil map", nil, 16},
		{"int", map[string]interface{}{"payload_size": 32}, 32},
		{"float64 from JSON", map[string]interface{}{"payload_size": float64(56)}, 56},
		{"wrong type", map[string]interface{}{"payload_size": "56"}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, GetIntConfig(tt.custom, "payload_size", 16), tt.want, "int config")
		})
	}
}

func TestGetBoolConfig(t *testing.T) {
	testutil.AssertTrue(t, GetBoolConfig(nil, "preflight", true), "nil map")
	testutil.AssertFalse(t, GetBoolConfig(map[string]interface{}{"preflight": false}, "preflight", true), "set false")
	testutil.AssertTrue(t, GetBoolConfig(map[string]interface{}{"preflight": "no"}, "preflight", true), "wrong type")
}

func TestValidateIntRange(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		expectErr bool
	}{
		{"in range", 64, false},
		{"at min", 1, false},
		{"at max", 255, false},
		{"below min", 0, true},
		{"above max", 256, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIntRange("ttl", tt.value, 1, 255)
			if tt.expectErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
