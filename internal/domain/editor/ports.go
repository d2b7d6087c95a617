package editor

import (
	"context"

	"github.com/google/uuid"
)

// AssetRef identifies a stored image after a successful upload.
type AssetRef struct {
	ID        uuid.UUID
	PublicURL string
}

// Uploader is the upload preprocessor port. Upload performs the full
// gate-compress-store-record pipeline and returns the stored asset.
// Retire removes an asset that is no longer referenced; it is best
// effort and its errors are logged, never surfaced.
type Uploader interface {
	Upload(ctx context.Context, file FileSelection) (AssetRef, error)
	Retire(ctx context.Context, publicURL string) error
}

// Gateway is the persistence port for one entity type. Update receives
// only the changed values and must apply them in a single write.
type Gateway interface {
	Create(ctx context.Context, values Values) (Values, error)
	Update(ctx context.Context, id uuid.UUID, changed Values) (Values, error)
}
