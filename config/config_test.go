package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestExpandEnvVar(t *testing.T) {
	os.Setenv("ROUTER_TEST_KEY", "secret-value")
	defer os.Unsetenv("ROUTER_TEST_KEY")
	viper.AutomaticEnv()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "plain-key", want: "plain-key"},
		{in: "${ROUTER_TEST_KEY}", want: "secret-value"},
		{in: "${ROUTER_MISSING_KEY}", want: "${ROUTER_MISSING_KEY}"},
	}

	for _, tt := range tests {
		if got := expandEnvVar(tt.in); got != tt.want {
			t.Errorf("expandEnvVar(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				{Name: "openai", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "none enabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Priority: 1, Model: "m"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLLMConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 2, "b": 3.0, "c": "x"}
	if got := getIntFromMap(m, "a"); got != 2 {
		t.Errorf("int value: got %d", got)
	}
	if got := getIntFromMap(m, "b"); got != 3 {
		t.Errorf("float value: got %d", got)
	}
	if got := getIntFromMap(m, "c"); got != 0 {
		t.Errorf("string value: got %d", got)
	}
}
