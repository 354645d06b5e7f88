package configs

import "time"

// ElasticsearchConfig arama indeksleme backend'inin bağlantı ayarlarını taşır.
type ElasticsearchConfig struct {
	Enabled  bool
	Host     string
	Index    string
	Username string
	Password string
	Timeout  time.Duration
}

// GetElasticsearchConfig ortam değişkenlerinden indeksleme ayarlarını okur.
// Enabled false ise veya Host/Index boşsa indeksleme no-op olarak çalışır.
func GetElasticsearchConfig() ElasticsearchConfig {
	return ElasticsearchConfig{
		Enabled:  GetEnvAsBool("ELASTICSEARCH_ENABLED", false),
		Host:     GetEnv("ELASTICSEARCH_HOST", ""),
		Index:    GetEnv("ELASTICSEARCH_INDEX", "survey_submissions"),
		Username: GetEnv("ELASTICSEARCH_USERNAME", ""),
		Password: GetEnv("ELASTICSEARCH_PASSWORD", ""),
		Timeout:  time.Duration(GetEnvAsInt("ELASTICSEARCH_TIMEOUT_SECONDS", 3)) * time.Second,
	}
}

// IsUsable konfigürasyonun bir indeksleme denemesi için yeterli olup olmadığını söyler.
func (c ElasticsearchConfig) IsUsable() bool {
	return c.Enabled && c.Host != "" && c.Index != ""
}
