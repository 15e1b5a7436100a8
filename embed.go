package embedded

import "embed"

//go:embed "views"
var Views embed.FS

//go:embed "configs"
var Configs embed.FS
