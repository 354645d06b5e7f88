package models

// Responder ankete cevap veren son kullanıcı kimliğidir.
// Kayıt sırasında oluşturulur, sonrasında token ile doğrulanır.
type Responder struct {
	BaseModel
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}
