package models

import "gorm.io/datatypes"

// Answer bir responder'ın tek bir soruya verdiği cevabı temsil eder.
// Her gönderim olayında bir kez oluşturulur; sonradan güncellenmez ve silinmez.
//
// ResponseData kendi kendini tanımlayan JSON payload'dur: değerin yanında
// soru tipine ait metadata (scale için aralık, multiple_choice için seçenek
// kümesi) da saklanır. Böylece kayıt, soru tanımına tekrar bakılmadan
// yorumlanabilir.
type Answer struct {
	BaseModel
	QuestionID   uint           `gorm:"not null;index" json:"question_id"`  // questions.id FK
	ResponderID  uint           `gorm:"not null;index" json:"responder_id"` // responders.id FK
	ResponseData datatypes.JSON `gorm:"not null" json:"response_data"`

	// GORM İlişkileri
	Question  Question  `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	Responder Responder `gorm:"foreignKey:ResponderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
}
