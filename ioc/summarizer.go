package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/vrecruit/vrecruit/internal/analytics"
)

// InitSummarizer AI 总结走 OpenAI 兼容接口
func InitSummarizer() analytics.Summarizer {
	type Config struct {
		BaseURL string `yaml:"baseURL"`
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	return analytics.NewLLMSummarizer(cfg.BaseURL, cfg.APIKey, cfg.Model)
}
