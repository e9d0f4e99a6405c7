package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App       *App       `json:"app" yaml:"app"`
	Server    *Server    `json:"server" yaml:"server"`
	Database  *Database  `json:"database" yaml:"database"`
	Jwt       *Jwt       `json:"jwt" yaml:"jwt"`
	Redis     *Redis     `json:"redis" yaml:"redis"`
	RateLimit *RateLimit `json:"rate_limit" yaml:"rate_limit"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
	// TrustedProxies 为空时不信任任何代理，ClientIP 取连接对端地址
	TrustedProxies []string `json:"trusted_proxies" yaml:"trusted_proxies"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(err)
	}
	return conf
}

// Parse 解析 yaml 并补齐缺省值
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 config.yaml 读取错误: %w", err)
	}
	conf.applyDefaults()
	if err := conf.Database.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.RateLimit == nil {
		c.RateLimit = &RateLimit{}
	}
	if c.RateLimit.Limit == 0 {
		c.RateLimit.Limit = 60
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
