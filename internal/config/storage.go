package config

type StorageConfig struct {
	JSONFileName string `yaml:"json-file"`
	CSVFileName  string `yaml:"csv-file"`
}

func (s *StorageConfig) JSONFile() string {
	return s.JSONFileName
}

func (s *StorageConfig) CSVFile() string {
	return s.CSVFileName
}
