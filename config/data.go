package config

import (
	dc "github.com/ncobase/yatube/data/config"

	"github.com/spf13/viper"
)

// Data represents the data configuration
type Data = dc.Config

// Database represents the relational database configuration
type Database = dc.Database

// Redis represents the redis configuration
type Redis = dc.Redis

// getDataConfig returns data config
func getDataConfig(v *viper.Viper) *Data {
	return dc.GetConfig(v)
}
