package utils

import (
	"testing"
	"time"
)

func TestPostgresPoolDefaults(t *testing.T) {
	p := PostgresPoolConfig{}.withDefaults()
	if p.MaxOpenConns != 10 || p.MaxIdleConns != 10 {
		t.Fatalf("unexpected pool sizing: %+v", p)
	}
	if p.PingTimeout != 5*time.Second {
		t.Fatalf("unexpected ping timeout: %v", p.PingTimeout)
	}
}

func TestPostgresPoolDefaultsKeepExplicitValues(t *testing.T) {
	p := PostgresPoolConfig{MaxOpenConns: 2, PingTimeout: time.Second}.withDefaults()
	if p.MaxOpenConns != 2 || p.PingTimeout != time.Second {
		t.Fatalf("explicit values must not be overridden: %+v", p)
	}
}
