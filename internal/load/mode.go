package load

import (
	"github.com/gyeh/eircode"
	"github.com/gyeh/eircode/internal/config"
)

// ModeName returns the config mode name for opts, as recorded on the source
// file row.
func ModeName(opts eircode.Options) string {
	switch {
	case opts.Strict:
		return config.ModeStrict
	case opts.Lax:
		return config.ModeLax
	}
	return config.ModeDefault
}
