package redis

import "testing"

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantAddr string
		wantDB   int
	}{
		{"defaults", map[string]string{}, "localhost:6379", 0},
		{"explicit", map[string]string{"REDIS_HOST": "cache", "REDIS_PORT": "6380", "REDIS_DB": "2"}, "cache:6380", 2},
		{"invalid db ignored", map[string]string{"REDIS_DB": "x"}, "localhost:6379", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB"} {
				t.Setenv(k, tt.env[k])
			}

			cfg := LoadConfig()
			if cfg.Addr() != tt.wantAddr {
				t.Errorf("expected addr %s, got %s", tt.wantAddr, cfg.Addr())
			}
			if cfg.DB != tt.wantDB {
				t.Errorf("expected db %d, got %d", tt.wantDB, cfg.DB)
			}
		})
	}
}
