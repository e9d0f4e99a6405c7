package config

// Redis Redis配置信息
type Redis struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// RateLimit 写接口限流，按客户端 IP 固定窗口计数
type RateLimit struct {
	Limit         int64 `json:"limit" yaml:"limit"`
	WindowSeconds int   `json:"window_seconds" yaml:"window_seconds"`
}
