package repositories

import (
	"context"
	"errors"

	"anket.link/configs/configsdatabase"
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IResponderRepository responder veritabanı işlemleri için arayüz.
type IResponderRepository interface {
	Create(ctx context.Context, responder *models.Responder) error
	FindByID(ctx context.Context, id uint) (*models.Responder, error)
	FindByEmail(ctx context.Context, email string) (*models.Responder, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ResponderRepository IResponderRepository arayüzünü uygular.
type ResponderRepository struct {
	db *gorm.DB
}

// NewResponderRepository yeni bir ResponderRepository örneği oluşturur.
func NewResponderRepository() IResponderRepository {
	return &ResponderRepository{db: configsdatabase.GetDB()}
}

// Context ile çalışan DB örneği döndüren yardımcı fonksiyon
func (r *ResponderRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok && tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Create yeni bir responder kaydı oluşturur.
func (r *ResponderRepository) Create(ctx context.Context, responder *models.Responder) error {
	if responder == nil || responder.Email == "" {
		return errors.New("geçersiz veya eksik e-postalı responder oluşturulamaz")
	}
	err := r.getDB(ctx).Create(responder).Error
	if err != nil {
		// Eşzamanlı kayıtta unique ihlali normal bir sonuçtur, hata loglanmaz.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		configslog.Log.Error("ResponderRepository.Create: DB error", zap.String("email", responder.Email), zap.Error(err))
	}
	return err
}

// FindByID belirli bir ID'ye sahip responder'ı bulur.
func (r *ResponderRepository) FindByID(ctx context.Context, id uint) (*models.Responder, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var responder models.Responder
	err := r.getDB(ctx).First(&responder, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ResponderRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &responder, nil
}

// FindByEmail e-posta adresine göre responder'ı bulur.
func (r *ResponderRepository) FindByEmail(ctx context.Context, email string) (*models.Responder, error) {
	if email == "" {
		return nil, ErrNotFound
	}
	var responder models.Responder
	err := r.getDB(ctx).Where("email = ?", email).First(&responder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ResponderRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return &responder, nil
}

// ExistsByEmail e-postanın kayıtlı olup olmadığını kontrol eder.
func (r *ResponderRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.getDB(ctx).Model(&models.Responder{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		configslog.Log.Error("ResponderRepository.ExistsByEmail: DB error", zap.String("email", email), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

var _ IResponderRepository = (*ResponderRepository)(nil)

// Transaction'lı Repository için yardımcı constructor
func NewResponderRepositoryTx(tx *gorm.DB) IResponderRepository {
	return &ResponderRepository{db: tx}
}
