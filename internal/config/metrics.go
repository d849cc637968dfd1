package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr"`
}

// Addr is the address of the /metrics endpoint. Empty disables it.
func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}
