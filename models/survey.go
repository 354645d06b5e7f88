package models

// SurveyStatus anketin yayın durumunu tanımlar.
type SurveyStatus string

const (
	SurveyStatusActive   SurveyStatus = "active"   // Yanıt kabul ediyor
	SurveyStatusInactive SurveyStatus = "inactive" // Yayından kaldırıldı
)

// Survey bir anketin ana kaydıdır. Oluşturulduktan sonra yalnızca
// durumu değişir; sorular ve başlık sabit kalır.
type Survey struct {
	BaseModel
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Status      SurveyStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`

	// GORM İlişkileri
	Questions []Question `gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions,omitempty"`
}
