package ioc

import (
	"time"

	"github.com/ecodeclub/esgform/internal/ai"
	"github.com/gotomicro/ego/core/econf"
)

func InitAIService() ai.Service {
	type Config struct {
		Platform string        `yaml:"platform"`
		APIKey   string        `yaml:"apikey"`
		Model    string        `yaml:"model"`
		BaseURL  string        `yaml:"baseURL"`
		Timeout  time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	switch cfg.Platform {
	case "openai":
		return ai.InitOpenAIService(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout)
	default:
		svc, err := ai.InitZhipuService(cfg.APIKey, cfg.Model, cfg.Timeout)
		if err != nil {
			panic(err)
		}
		return svc
	}
}
