package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	domainservice "arunika/internal/domain/service"
	"arunika/pkg/errors"
)

// MaxFileSize is the per-file ceiling enforced before any upload attempt.
const MaxFileSize = 10 << 20 // 10 MB

// FileField declares one expected file field of an entity kind.
type FileField struct {
	Name   string
	Role   Role
	Max    int
	Preset domainservice.ImagePreset
}

// Form describes which file fields an entity kind accepts.
type Form struct {
	Kind   string
	Fields []FileField
}

var (
	ProjectForm = Form{
		Kind: "project",
		Fields: []FileField{
			{Name: "images", Role: RoleGalleryItem, Max: 10, Preset: PresetProjectGallery},
		},
	}

	ServiceForm = Form{
		Kind: "service",
		Fields: []FileField{
			{Name: "icon", Role: RoleIcon, Max: 1, Preset: PresetIcon},
			{Name: "image", Role: RoleImage, Max: 1, Preset: PresetServiceImage},
		},
	}

	TeamMemberForm = Form{
		Kind: "team_member",
		Fields: []FileField{
			{Name: "image", Role: RoleImage, Max: 1, Preset: PresetTeamPortrait},
		},
	}
)

// Gate validates the declared file fields of a multipart request and turns
// each accepted file into a Request. With direct upload enabled, accepted
// files are streamed to the remote store as they are parsed; otherwise
// their bytes are buffered for the adapter to upload later.
type Gate struct {
	uploader    *Uploader
	compensator *Compensator
	capability  Capability
	maxFileSize int64
}

func NewGate(uploader *Uploader, compensator *Compensator, capability Capability) *Gate {
	return &Gate{
		uploader:    uploader,
		compensator: compensator,
		capability:  capability,
		maxFileSize: MaxFileSize,
	}
}

func (g *Gate) Parse(ctx context.Context, form *multipart.Form, spec Form) ([]Request, error) {
	if form == nil {
		return nil, nil
	}

	var requests []Request
	for _, field := range spec.Fields {
		files := form.File[field.Name]
		if field.Max > 0 && len(files) > field.Max {
			g.abort(ctx, requests)
			return nil, errors.Validation(fmt.Sprintf("Too many files for %s: at most %d allowed", field.Name, field.Max))
		}

		for _, header := range files {
			request, err := g.accept(ctx, header, field)
			if err != nil {
				g.abort(ctx, requests)
				return nil, err
			}
			requests = append(requests, request)
		}
	}

	return requests, nil
}

func (g *Gate) accept(ctx context.Context, header *multipart.FileHeader, field FileField) (Request, error) {
	if header.Size > g.maxFileSize {
		return Request{}, errors.Validation(fmt.Sprintf("File %s exceeds the %dMB size limit", header.Filename, g.maxFileSize/(1024*1024)))
	}

	src, err := header.Open()
	if err != nil {
		return Request{}, errors.Internal("Unable to read uploaded file", err)
	}
	defer src.Close()

	// Sniff the leading bytes when the part carries no usable content type.
	head := make([]byte, 3072)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Request{}, errors.Internal("Unable to read uploaded file", err)
	}
	head = head[:n]

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(head).String()
	}

	if !isAllowedImageType(contentType) {
		return Request{}, errors.Validation(fmt.Sprintf("File %s has unsupported type %s", header.Filename, contentType))
	}

	file := io.MultiReader(bytes.NewReader(head), src)
	request := Request{
		Field:    field.Name,
		Role:     field.Role,
		Filename: header.Filename,
		Size:     header.Size,
		Preset:   field.Preset,
	}

	if g.capability.DirectUpload {
		asset, err := g.uploader.push(ctx, file, contentType, header.Filename, field.Preset)
		if err != nil {
			return Request{}, err
		}
		request.Payload = Direct{Asset: asset}
		return request, nil
	}

	buffered, err := io.ReadAll(file)
	if err != nil {
		return Request{}, errors.Internal("Unable to buffer uploaded file", err)
	}
	request.Payload = Buffered{Bytes: buffered, ContentType: contentType}
	return request, nil
}

// abort cleans up files already streamed in direct mode when a later file
// of the same request is rejected.
func (g *Gate) abort(ctx context.Context, requests []Request) {
	if assets := PreloadedAssets(requests); len(assets) > 0 {
		g.compensator.Compensate(ctx, assets)
	}
}

func isAllowedImageType(contentType string) bool {
	mediaType := contentType
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = mediaType[:idx]
	}
	return strings.HasPrefix(strings.TrimSpace(mediaType), "image/")
}
