package ports

import "github.com/rafabene/threaddate-backend/internal/domain/entities"

// TagDetailCache guarda a visão de detalhe das etiquetas
type TagDetailCache interface {
	Get(tagID string) (*entities.TagDetail, bool)
	// Version deve ser lida antes de montar o detalhe a partir do banco
	Version(tagID string) uint64
	// Set descarta o detalhe se houve Invalidate desde a leitura de version
	Set(tagID string, version uint64, detail *entities.TagDetail) bool
	Invalidate(tagID string)
}
