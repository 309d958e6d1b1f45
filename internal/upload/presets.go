package upload

import (
	domainservice "arunika/internal/domain/service"
)

// Transformation presets per entity kind. Parameters are passed through to
// the store untouched; vector assets bypass them entirely.
var (
	PresetTeamPortrait = domainservice.ImagePreset{
		Name:    "team",
		Width:   600,
		Height:  600,
		Crop:    "fill",
		Gravity: "face",
	}

	PresetProjectGallery = domainservice.ImagePreset{
		Name:   "projects",
		Width:  1920,
		Height: 1080,
		Crop:   "fit",
	}

	PresetServiceImage = domainservice.ImagePreset{
		Name:   "services",
		Width:  1200,
		Height: 800,
		Crop:   "fit",
	}

	PresetIcon = domainservice.ImagePreset{
		Name:   "icons",
		Width:  200,
		Height: 200,
		Crop:   "fill",
	}
)
