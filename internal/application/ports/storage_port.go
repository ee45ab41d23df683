package ports

import (
	"context"
	"io"
)

// BlobStorage porta de saída para arquivos públicos (imagens de produto).
type BlobStorage interface {
	// Upload grava o conteúdo sob key e devolve a URL pública.
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
}
