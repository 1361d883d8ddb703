package config

import (
	"time"

	"github.com/spf13/viper"
)

// Database database config struct
type Database struct {
	Driver          string        `json:"driver" yaml:"driver"`
	Source          string        `json:"source" yaml:"source"`
	Logging         bool          `json:"logging" yaml:"logging"`
	MaxIdleConn     int           `json:"max_idle_conn" yaml:"max_idle_conn"`
	MaxOpenConn     int           `json:"max_open_conn" yaml:"max_open_conn"`
	ConnMaxLifeTime time.Duration `json:"conn_max_life_time" yaml:"conn_max_life_time"`
	Migrate         bool          `json:"migrate" yaml:"migrate"`
}

// getDatabaseConfig reads database configurations
func getDatabaseConfig(v *viper.Viper) *Database {
	driver := v.GetString("data.database.driver")
	if driver == "" {
		driver = "sqlite"
	}
	source := v.GetString("data.database.source")
	if source == "" && driver == "sqlite" {
		source = "file:yatube.db?_foreign_keys=on"
	}
	migrate := true
	if v.IsSet("data.database.migrate") {
		migrate = v.GetBool("data.database.migrate")
	}
	return &Database{
		Driver:          driver,
		Source:          source,
		Logging:         v.GetBool("data.database.logging"),
		MaxIdleConn:     v.GetInt("data.database.max_idle_conn"),
		MaxOpenConn:     v.GetInt("data.database.max_open_conn"),
		ConnMaxLifeTime: v.GetDuration("data.database.conn_max_life_time"),
		Migrate:         migrate,
	}
}
