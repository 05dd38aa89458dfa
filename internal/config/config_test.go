package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	c := Load()
	if c.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr default")
	}
	if c.DBPath != "minimal-shop.db" {
		t.Fatalf("DBPath default")
	}
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("ShutdownTimeout default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/shop.db")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	c := Load()
	if c.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr env")
	}
	if c.DBPath != "/tmp/shop.db" {
		t.Fatalf("DBPath env")
	}
	if c.ShutdownTimeout != 2*time.Second {
		t.Fatalf("ShutdownTimeout env")
	}
}

func TestLoadMalformedDurationFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	c := Load()
	if c.ShutdownTimeout != 10*time.Second {
		t.Fatalf("malformed duration must fall back to default")
	}
}
