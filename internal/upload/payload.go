package upload

import (
	"arunika/internal/domain/entity"
	domainservice "arunika/internal/domain/service"
)

type Role string

const (
	RoleIcon        Role = "icon"
	RoleImage       Role = "image"
	RoleGalleryItem Role = "gallery_item"
)

// Payload is what the gate produced for one accepted file: either a handle
// to an object already streamed to the remote store, or the raw bytes held
// in memory for a later explicit upload.
type Payload interface {
	isPayload()
}

// Direct means the file was streamed to the remote store during ingestion.
// The asset it carries is unattached until an entity write commits, and is
// a deletion candidate if the surrounding operation fails.
type Direct struct {
	Asset entity.Asset
}

// Buffered holds the file in memory for the fallback path.
type Buffered struct {
	Bytes       []byte
	ContentType string
}

func (Direct) isPayload()   {}
func (Buffered) isPayload() {}

// Request is one accepted file from a mutation request. Never persisted.
type Request struct {
	Field    string
	Role     Role
	Filename string
	Size     int64
	Preset   domainservice.ImagePreset
	Payload  Payload
}

// PreloadedAssets collects the assets of Direct payloads: objects that are
// already remote before the orchestrator has uploaded anything itself.
// Aborting before the entity write must hand these to the compensator.
func PreloadedAssets(requests []Request) []entity.Asset {
	var assets []entity.Asset
	for _, req := range requests {
		if direct, ok := req.Payload.(Direct); ok {
			assets = append(assets, direct.Asset)
		}
	}
	return assets
}
