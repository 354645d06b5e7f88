package main

import (
	"flag"

	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Veritabanı başlatma işlemini çalıştır (migrasyonları içerir)")
	seedFlag := flag.Bool("seed", false, "Veritabanı başlatma işlemini çalıştır (seederları içerir)")
	flag.Parse()

	if err := configsdatabase.InitDB(); err != nil {
		configslog.SLog.Fatalf("Veritabanı bağlantısı kurulamadı: %v", err)
	}
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
}
