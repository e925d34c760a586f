package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, expected := range cases {
		if got := ParseLevel(input); got != expected {
			t.Errorf("ParseLevel(%q): esperava %v, obteve %v", input, expected, got)
		}
	}
}

func TestSlogLogger(t *testing.T) {
	t.Run("escreve JSON com atributos do With", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "info").With("module", "votes")

		logger.Info("vote cast", "tag_id", "t1")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("saída não é JSON: %v", err)
		}
		if entry["msg"] != "vote cast" {
			t.Errorf("esperava msg 'vote cast', obteve '%v'", entry["msg"])
		}
		if entry["module"] != "votes" || entry["tag_id"] != "t1" {
			t.Errorf("atributos ausentes: %v", entry)
		}
	})

	t.Run("descarta mensagens abaixo do nível", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerWithWriter(&buf, "warn")

		logger.Debug("hidden")
		logger.Info("hidden")

		if buf.Len() != 0 {
			t.Errorf("esperava saída vazia, obteve %q", buf.String())
		}
	})
}
