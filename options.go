package overlay

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay/host"
)

// Option configures a Manager during creation.
// Use functional options to customize Manager behavior.
//
// Example:
//
//	// Default panel naming and texture format
//	mgr := overlay.NewManager()
//
//	// Custom name prefix for scene resource names
//	mgr := overlay.NewManager(overlay.WithNamePrefix("MiniMapHUD"))
type Option func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	namePrefix string
	format     gputypes.TextureFormat
}

// defaultManagerOptions returns the default manager options.
func defaultManagerOptions() managerOptions {
	return managerOptions{
		namePrefix: "OverlayHUD",
		format:     host.DefaultFormat,
	}
}

// WithNamePrefix sets the prefix used for the panel's generated scene
// resource names. A process-wide counter is appended to the prefix, so two
// managers sharing a prefix still produce unique names.
func WithNamePrefix(prefix string) Option {
	return func(o *managerOptions) {
		if prefix != "" {
			o.namePrefix = prefix
		}
	}
}

// WithTextureFormat sets the pixel format for the panel's texture.
// The default is host.DefaultFormat (32-bit RGBA).
func WithTextureFormat(format gputypes.TextureFormat) Option {
	return func(o *managerOptions) {
		o.format = format
	}
}
