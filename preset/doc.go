// Package preset is a lazily populated registry of named switch-angle tables.
//
// The registry knows nothing about where table bytes live: a Provider maps a
// Name to a stream (FSProvider covers embed.FS and directories). Each name is
// decoded once on first use and cached for the life of the Registry; decode
// failures are cached too and surfaced to every caller.
//
//	reg, _ := preset.NewRegistry(preset.NewFSProvider(os.DirFS("tables"), "."))
//	tbl, err := reg.Get(preset.She9Alt2)
package preset
