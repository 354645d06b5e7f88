package configsdatabase

import (
	"fmt"
	"time"

	"anket.link/configs"
	"anket.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB ortam değişkenlerinden DSN oluşturup Postgres bağlantısını açar.
// Uygulama başlangıcında bir kez çağrılmalıdır.
func InitDB() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_USER", "postgres"),
		configs.GetEnv("DB_PASSWORD", ""),
		configs.GetEnv("DB_NAME", "anket"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kurulamadı", zap.Error(err))
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvAsInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(configs.GetEnvAsInt("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = gormDB
	configslog.SLog.Info("Veritabanı bağlantısı başarıyla kuruldu.")
	return nil
}

// GetDB global GORM bağlantısını döndürür.
func GetDB() *gorm.DB {
	return db
}

// SetDB bağlantıyı dışarıdan atar. Testlerde sqlite in-memory DB vermek için kullanılır.
func SetDB(gormDB *gorm.DB) {
	db = gormDB
}

// CloseDB altta yatan sql.DB bağlantısını kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("DB kapatılırken bağlantı alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("DB bağlantısı kapatılamadı", zap.Error(err))
	}
}
