package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/vrecruit/vrecruit/internal/cos"
)

func InitCosHandler() *cos.Handler {
	type Config struct {
		SecretID  string `yaml:"secretId"`
		SecretKey string `yaml:"secretKey"`
		AppID     string `yaml:"appId"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
	}
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	return cos.NewHandler(cfg.SecretID, cfg.SecretKey,
		cfg.AppID, cfg.Bucket, cfg.Region)
}
