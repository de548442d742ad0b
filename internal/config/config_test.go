package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		JWT:   JWTConfig{Secret: "secret"},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Loads: LoadsConfig{Sequencer: "count"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "redis sequencer", mutate: func(c *Config) { c.Loads.Sequencer = "redis" }},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "JWT_SECRET"},
		{name: "missing redis", mutate: func(c *Config) { c.Redis.Addr = "" }, wantErr: "REDIS_ADDR"},
		{name: "unknown sequencer", mutate: func(c *Config) { c.Loads.Sequencer = "uuid" }, wantErr: "LOAD_ID_SEQUENCER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDatabaseURLs(t *testing.T) {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "tms", Password: "pw", DBName: "freight", SSLMode: "disable"}

	if !strings.Contains(db.DSN(), "dbname=freight") {
		t.Fatalf("unexpected DSN %q", db.DSN())
	}
	if got, want := db.MigrateURL(), "pgx5://tms:pw@db:5432/freight?sslmode=disable"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	db.Password = "p@ss/word"
	if !strings.Contains(db.MigrateURL(), "p%40ss%2Fword@") {
		t.Fatalf("password not escaped: %q", db.MigrateURL())
	}
}
