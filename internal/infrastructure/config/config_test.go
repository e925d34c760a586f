package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("aplica defaults quando variáveis não estão definidas", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("esperava porta '8080', obteve '%s'", cfg.Server.Port)
		}
		if cfg.JWT.AccessExpiry != 24*time.Hour {
			t.Errorf("esperava expiração de 24h, obteve %s", cfg.JWT.AccessExpiry)
		}
		if cfg.Storage.Driver != "local" {
			t.Errorf("esperava driver 'local', obteve '%s'", cfg.Storage.Driver)
		}
		if cfg.Storage.MaxImageBytes != 5<<20 {
			t.Errorf("esperava limite de 5 MiB, obteve %d", cfg.Storage.MaxImageBytes)
		}
	})

	t.Run("variáveis de ambiente sobrescrevem defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9090")
		t.Setenv("CACHE_TTL", "30s")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("esperava porta '9090', obteve '%s'", cfg.Server.Port)
		}
		if cfg.Cache.TTL != 30*time.Second {
			t.Errorf("esperava TTL de 30s, obteve %s", cfg.Cache.TTL)
		}
	})

	t.Run("erro sem JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		if _, err := Load(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro com driver gcs sem bucket", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("STORAGE_DRIVER", "gcs")
		t.Setenv("STORAGE_BUCKET", "")

		if _, err := Load(); err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "threaddate",
		Password: "secret",
		DBName:   "catalog",
		SSLMode:  "disable",
	}

	expected := "host=db port=5432 user=threaddate password=secret dbname=catalog sslmode=disable"
	if d.DSN() != expected {
		t.Errorf("esperava '%s', obteve '%s'", expected, d.DSN())
	}
}
