package configs

import (
	"os"
	"strconv"
	"time"
)

// GetEnv ortam değişkenini okur, boşsa verilen varsayılanı döndürür.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt sayısal ortam değişkenini okur. Parse edilemezse varsayılan kullanılır.
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// GetEnvAsBool "true"/"1" değerlerini true sayar.
func GetEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return fallback
}

// GetListenAddr HTTP sunucusunun dinleyeceği adresi döndürür.
func GetListenAddr() string {
	return GetEnv("APP_ADDR", ":8080")
}

// GetJWTSecret token imzalama anahtarını döndürür.
func GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "")
}

// GetJWTTTL token geçerlilik süresini döndürür (dakika cinsinden ayarlanır).
func GetJWTTTL() time.Duration {
	return time.Duration(GetEnvAsInt("JWT_TTL_MINUTES", 60)) * time.Minute
}

// GetSurveyCacheTTL anket listesi cache süresini döndürür (saniye cinsinden ayarlanır).
func GetSurveyCacheTTL() time.Duration {
	return time.Duration(GetEnvAsInt("SURVEY_CACHE_TTL_SECONDS", 60)) * time.Second
}

// GetSubmitRateLimit submit ucu için dakikadaki istek kotasını döndürür.
func GetSubmitRateLimit() int {
	return GetEnvAsInt("SUBMIT_RATE_LIMIT_PER_MINUTE", 30)
}

// GetJobQueueSize asenkron iş kuyruğunun tampon boyutunu döndürür.
func GetJobQueueSize() int {
	return GetEnvAsInt("JOB_QUEUE_SIZE", 256)
}

// GetJobWorkerCount kuyruğu tüketen worker sayısını döndürür.
func GetJobWorkerCount() int {
	return GetEnvAsInt("JOB_WORKER_COUNT", 2)
}
