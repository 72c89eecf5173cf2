package web

import "embed"

// Assets embeds the dashboard files into the binary.
//
//go:embed static
var Assets embed.FS
