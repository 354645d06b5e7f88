package models

// QuestionType bir sorunun cevap tipini tanımlar. Normalizasyon kuralları
// bu tipe göre seçilir.
type QuestionType string

const (
	QuestionTypeText           QuestionType = "text"            // Serbest metin, 1-2000 karakter
	QuestionTypeScale          QuestionType = "scale"           // 1-5 arası tam sayı
	QuestionTypeMultipleChoice QuestionType = "multiple_choice" // Sabit seçenek listesi
)

// MultipleChoiceOptions çoktan seçmeli sorular için izin verilen sabit küme.
// Karşılaştırma büyük/küçük harf duyarlıdır.
var MultipleChoiceOptions = []string{"Yes", "No"}

// Question bir ankete ait tek bir soruyu temsil eder.
// Bu sistemin kapsamında seed sonrası değişmez.
type Question struct {
	BaseModel
	SurveyID     uint         `gorm:"not null;index" json:"survey_id"` // surveys.id FK
	Type         QuestionType `gorm:"type:varchar(30);not null" json:"type"`
	QuestionText string       `gorm:"type:text;not null" json:"question_text"`

	// GORM İlişkileri
	Survey Survey `gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
