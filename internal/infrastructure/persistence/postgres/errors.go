package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/rafabene/threaddate-backend/internal/domain/ports"
)

// isUniqueViolation detecta violação de unicidade, traduzida ou não pelo GORM
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// logError registra a falha de uma operação de repositório e devolve o erro
func logError(log ports.Logger, event string, err error, attrs ...any) error {
	if log == nil {
		return err
	}
	fields := make([]any, 0, len(attrs)+4)
	fields = append(fields,
		"event", event,
		"layer", "repository",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	log.Error("repository operation failed", fields...)
	return err
}

// pagination normaliza página e tamanho da página
func pagination(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}

func toUnixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ts := t.Unix()
	return &ts
}

func fromUnixPtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0)
	return &t
}
