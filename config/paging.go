package config

import "github.com/spf13/viper"

// Paging paging config struct
type Paging struct {
	PerPage int
}

func getPagingConfig(v *viper.Viper) *Paging {
	perPage := getIntOrDefault(v, "paging.per_page", 10)
	if perPage <= 0 {
		perPage = 10
	}
	return &Paging{PerPage: perPage}
}
