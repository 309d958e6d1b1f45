package usecase

import (
	"context"
	"strings"

	"arunika/internal/domain/entity"
	"arunika/internal/upload"
)

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// ensureSinglePrimary enforces the gallery invariant: a non-empty gallery
// has exactly one primary element. The first element wins when none is
// flagged (the first new upload of a previously empty gallery, or the first
// remaining image when the primary itself was removed).
func ensureSinglePrimary(gallery []entity.Asset) {
	if len(gallery) == 0 {
		return
	}

	seen := false
	for i := range gallery {
		if gallery[i].IsPrimary {
			if seen {
				gallery[i].IsPrimary = false
			}
			seen = true
		}
	}

	if !seen {
		gallery[0].IsPrimary = true
	}
}

// uploadAll runs the upload step for every accepted file. On the first
// failure it compensates the uploads that already succeeded in this request
// (including direct payloads the loop never reached, which are remote
// already) and returns the upload error.
func uploadAll(ctx context.Context, uploader *upload.Uploader, compensator *upload.Compensator, files []upload.Request) ([]entity.Asset, error) {
	uploaded := make([]entity.Asset, 0, len(files))
	for i, file := range files {
		asset, err := uploader.Upload(ctx, file)
		if err != nil {
			compensator.Compensate(ctx, append(uploaded, upload.PreloadedAssets(files[i+1:])...))
			return nil, err
		}
		uploaded = append(uploaded, asset)
	}
	return uploaded, nil
}

// discardPreloaded cleans up direct-streamed files when the operation
// aborts before its upload step ran at all.
func discardPreloaded(ctx context.Context, compensator *upload.Compensator, files []upload.Request) {
	if assets := upload.PreloadedAssets(files); len(assets) > 0 {
		compensator.Compensate(ctx, assets)
	}
}
