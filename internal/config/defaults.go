package config

import "time"

const (
	defaultServerAddress  = "localhost:8080"
	defaultAdapterAddress = "http://localhost:8080"
	defaultClientDSN      = "code-sharing-box.db"
	defaultKeepMessages   = 100
	defaultPruneInterval  = time.Hour
	defaultCookieSweep    = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress: defaultServerAddress,
		},
		Adapter: Adapter{
			HTTPAddress: defaultAdapterAddress,
		},
		Workers: Workers{
			PruneInterval:       defaultPruneInterval,
			KeepMessages:        defaultKeepMessages,
			CookieSweepInterval: defaultCookieSweep,
		},
	}
}
