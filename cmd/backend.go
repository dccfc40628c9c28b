package cmd

import (
	"macclip/pkg/clipboard"
	"macclip/pkg/config"
	"macclip/pkg/content"
	"macclip/pkg/errors"
	"macclip/pkg/query"
)

// newQuerier picks the clipboard backend named in the config.
func newQuerier(cfg *config.Config) (query.Querier, error) {
	switch cfg.Host.Backend {
	case config.BackendSystem:
		if !clipboard.Available() {
			return nil, errors.NewWithSuggestion(errors.ExitCodeConfig,
				"no clipboard utility available for the system backend",
				"Install xclip, xsel or wl-clipboard, or set host.backend to osascript on macOS.")
		}
		return clipboard.NewSystem(cfg.Host.Timeout), nil
	default:
		return query.NewOSAScript(cfg.Host.Command, cfg.Formats.Preferred, query.WithTimeout(cfg.Host.Timeout))
	}
}

func newReader(cfg *config.Config) (*content.Reader, error) {
	q, err := newQuerier(cfg)
	if err != nil {
		return nil, err
	}
	return content.NewReader(q, content.NewAssembler(nil)), nil
}
