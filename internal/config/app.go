package config

type AppConfig struct {
	LogFileName string `yaml:"log-file"`
}

func (s *AppConfig) LogFile() string {
	return s.LogFileName
}
