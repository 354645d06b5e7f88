package database

import (
	"anket.link/configs/configslog"
	"anket.link/database/migrations"
	"anket.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(db); err != nil {
			configslog.Log.Fatal("Migrasyon başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		if err := CheckAndRunSeeders(db); err != nil {
			configslog.Log.Fatal("Seeding başarısız oldu", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	configslog.SLog.Info(" -> Responder migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateRespondersTable(db); err != nil {
		configslog.Log.Error("Responders tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Responder migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Survey migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateSurveysTable(db); err != nil {
		configslog.Log.Error("Surveys tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Survey migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Question migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateQuestionsTable(db); err != nil {
		configslog.Log.Error("Questions tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Question migrasyonları tamamlandı.")

	configslog.SLog.Info(" -> Answer migrasyonları çalıştırılıyor...")
	if err := migrations.MigrateAnswersTable(db); err != nil {
		configslog.Log.Error("Answers tablosu migrasyonu başarısız oldu", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Answer migrasyonları tamamlandı.")

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Survey seeder çalıştırılıyor...")
	if err := seeders.SeedSurveys(db); err != nil {
		configslog.Log.Error("Surveys tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Survey seeder tamamlandı.")

	configslog.SLog.Info(" -> Question seeder çalıştırılıyor...")
	if err := seeders.SeedQuestions(db); err != nil {
		configslog.Log.Error("Questions tablosu seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> Question seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
