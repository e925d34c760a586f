package testutil

import "github.com/rafabene/threaddate-backend/internal/domain/ports"

// NopLogger descarta todas as mensagens
type NopLogger struct{}

func (NopLogger) Info(string, ...any)        {}
func (NopLogger) Error(string, ...any)       {}
func (NopLogger) Debug(string, ...any)       {}
func (NopLogger) Warn(string, ...any)        {}
func (l NopLogger) With(...any) ports.Logger { return l }
