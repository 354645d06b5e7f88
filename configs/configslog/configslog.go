package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapısal loglama için global zap logger.
// SLog ise formatlı mesajlar için sugared versiyonu.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// Paket yüklenirken varsayılan logger hazırlanır, böylece InitLogger
// çağrılmadan önce (örn. testlerde) loglama nil panic üretmez.
func init() {
	Log = newLogger(os.Getenv("APP_ENV"))
	SLog = Log.Sugar()
}

// InitLogger ortam değişkenine göre logger'ı yeniden yapılandırır.
// APP_ENV=production ise JSON formatlı production config kullanılır.
func InitLogger() {
	Log = newLogger(os.Getenv("APP_ENV"))
	SLog = Log.Sugar()
}

func newLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulama zaten sağlıklı çalışamaz.
		panic("logger oluşturulamadı: " + err.Error())
	}
	return logger
}

// SyncLogger tamponlanmış logları diske yazar. Uygulama kapanırken çağrılmalı.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
