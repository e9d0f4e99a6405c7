package config

import (
	"fmt"
	"strings"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Database 数据库配置信息
type Database struct {
	Driver   string `json:"driver" yaml:"driver"`
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Name     string `json:"name" yaml:"name"`
	Params   string `json:"params" yaml:"params"`
}

func (d *Database) Validate() error {
	switch d.Driver {
	case DriverMySQL, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q", d.Driver)
	}
}

// Dsn 按驱动拼接连接串
func (d *Database) Dsn() string {
	switch d.Driver {
	case DriverPostgres:
		port := d.Port
		if port == 0 {
			port = 5432
		}
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
			d.Host, d.Username, d.Password, d.Name, port)
		if d.Params == "" {
			return dsn + " sslmode=disable TimeZone=UTC"
		}
		return dsn + " " + d.Params
	default:
		port := d.Port
		if port == 0 {
			port = 3306
		}
		params := d.Params
		if params == "" {
			params = "charset=utf8mb4&parseTime=True&loc=Local"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			d.Username, d.Password, d.Host, port, d.Name, strings.TrimPrefix(params, "?"))
	}
}
