package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// ApiKey 非空且 Env 不是 local 时校验 X-API-Key
	ApiKey string `json:"api_key" yaml:"api_key"`
}

// IsLocal 本地开发环境
func (a *App) IsLocal() bool {
	return a.Env == "local"
}
