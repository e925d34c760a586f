package ports

import "context"

// ObjectStorage define o bucket onde as imagens enviadas são guardadas
type ObjectStorage interface {
	// Put grava o objeto e retorna sua URL pública
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
	// Delete remove o objeto; remover um objeto inexistente não é erro
	Delete(ctx context.Context, key string) error
}
