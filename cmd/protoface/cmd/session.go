package cmd

import (
	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/protoface/internal/config"
	"github.com/OpenTraceLab/protoface/pkg/editor"
	"github.com/OpenTraceLab/protoface/pkg/face/script"
)

// resolveConfigPath returns --config or the platform default.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig(logger *log.Logger) (*config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("loading config", "path", path)
	return config.Load(path)
}

// newSession builds a headless controller from the config and replays
// scriptPath into it when set.
func newSession(logger *log.Logger, scriptPath string, opts ...editor.Option) (*config.Config, *editor.Controller, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, nil, err
	}
	opts = append([]editor.Option{editor.WithFilename(cfg.Export.Filename)}, opts...)
	ctrl := editor.New(nil, cfg.Canvas, opts...)
	if scriptPath == "" {
		return cfg, ctrl, nil
	}

	p, err := script.NewParser()
	if err != nil {
		return nil, nil, err
	}
	s, err := p.ParseFile(scriptPath)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Apply(ctrl); err != nil {
		return nil, nil, err
	}
	logger.Debug("script applied", "file", scriptPath, "statements", len(s.Statements), "lit", ctrl.Model().LitCount())
	return cfg, ctrl, nil
}
