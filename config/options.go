package config

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/copperhead-games/gomoku-engine/board"
)

// EngineOptions collects the per-game knobs a caller may set before
// starting a decide loop: which variant (and therefore board size) to
// play, and whether the position-hash cache is on. Unset fields are
// filled in by SetDefaults from the ambient Config.
type EngineOptions struct {
	Variant     board.Variant
	BoardSize   int
	CacheOn     *bool
}

// SetDefaults fills in any zero-valued fields from cfg, logging each
// default it applies, the same way a game's options are defaulted from
// the ambient configuration before play starts.
func (o *EngineOptions) SetDefaults(cfg *Config) {
	if o.Variant == "" {
		o.Variant = cfg.Variant()
		log.Info().Str("variant", string(o.Variant)).Msg("using default variant")
	}
	if o.BoardSize == 0 {
		o.BoardSize = o.Variant.DefaultSize()
		log.Info().Int("board_size", o.BoardSize).Msg("using default board size")
	}
	if o.CacheOn == nil {
		v := cfg.CacheEnabled()
		o.CacheOn = &v
		log.Info().Bool("cache_enabled", v).Msg("using default cache setting")
	}
}

// SetVariant parses and sets a variant by name.
func (o *EngineOptions) SetVariant(name string) error {
	switch board.Variant(name) {
	case board.VarStandard, board.VarSmall, board.VarLarge:
		o.Variant = board.Variant(name)
		return nil
	default:
		return fmt.Errorf("%q is not a supported variant name", name)
	}
}
