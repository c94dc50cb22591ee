package app

import (
	"github.com/rs/zerolog"

	"github.com/BobinYang/ResXResourceManager/internal/config"
	"github.com/BobinYang/ResXResourceManager/internal/translation"
)

// newRegistry wires the configured translators.
func newRegistry(cfg *config.Config, logger zerolog.Logger) (*translation.Registry, error) {
	registry := translation.NewRegistry(cfg.DefaultTranslator)

	youdao := translation.NewYoudaoTranslator(translation.YoudaoConfig{
		AppKey:    cfg.YoudaoAppKey,
		AppSecret: cfg.YoudaoAppSecret,
		APIURL:    cfg.YoudaoAPIURL,
		Ranking:   cfg.TranslatorRanking,
	}, nil, logger)
	if err := registry.Register(youdao); err != nil {
		return nil, err
	}

	return registry, nil
}
