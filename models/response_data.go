package models

// ResponseData bir cevabın kendi kendini tanımlayan payload'udur.
// Type alanı hangi varyant olduğunu söyler; Range yalnızca scale,
// Options yalnızca multiple_choice cevaplarında doludur. Böylece saklanan
// kayıt, soru tanımına tekrar bakılmadan yorumlanabilir.
type ResponseData struct {
	Type    QuestionType `json:"type"`
	Value   any          `json:"value"`
	Range   []int        `json:"range,omitempty"`
	Options []string     `json:"options,omitempty"`
}

// NewTextResponseData serbest metin cevabı için payload oluşturur.
// Değer kırpılmadan, geldiği gibi saklanır.
func NewTextResponseData(value string) ResponseData {
	return ResponseData{Type: QuestionTypeText, Value: value}
}

// NewScaleResponseData 1-5 ölçek cevabı için payload oluşturur.
func NewScaleResponseData(value int) ResponseData {
	return ResponseData{Type: QuestionTypeScale, Value: value, Range: []int{1, 5}}
}

// NewMultipleChoiceResponseData çoktan seçmeli cevap için payload oluşturur.
func NewMultipleChoiceResponseData(value string) ResponseData {
	return ResponseData{Type: QuestionTypeMultipleChoice, Value: value, Options: MultipleChoiceOptions}
}

// NormalizedAnswer doğrulamadan geçmiş, kalıcı yazıma hazır tek bir cevaptır.
// Hem API yanıtında hem arama indeksi dokümanında bu şekliyle yer alır.
type NormalizedAnswer struct {
	QuestionID   uint         `json:"question_id"`
	ResponderID  uint         `json:"responder_id"`
	ResponseData ResponseData `json:"response_data"`
}
