package jobs

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"anket.link/configs"
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
)

// SubmissionDocument arama indeksine yazılan gönderim kaydıdır.
// İlişkisel tarafta saklanmaz; yalnızca indeks kopyası için üretilir.
type SubmissionDocument struct {
	SurveyID    uint                      `json:"survey_id"`
	ResponderID uint                      `json:"responder_id"`
	SubmittedAt string                    `json:"submitted_at"`
	IP          string                    `json:"ip"`
	UserAgent   string                    `json:"user_agent"`
	Answers     []models.NormalizedAnswer `json:"answers"`
}

// SubmissionIndexer gönderim dokümanlarını Elasticsearch'e yazar.
//
// Sözleşme: her çağrı terminal bir durumda biter ve sonucu yalnızca loglar.
// İndeks yoksa bir kez oluşturulup doküman bir kez daha denenir; başka hiçbir
// koşulda tekrar denenmez. Backend'in erişilemez olması gönderimi asla etkilemez.
type SubmissionIndexer struct {
	cfg    configs.ElasticsearchConfig
	client *http.Client
}

// NewSubmissionIndexer konfigürasyona bağlı bir indexer oluşturur.
func NewSubmissionIndexer(cfg configs.ElasticsearchConfig) *SubmissionIndexer {
	return &SubmissionIndexer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

const maxLoggedBodyLength = 600

// Index dokümanı indekse gönderir. Tüm sonuçlar loglanır, hata döndürülmez.
func (ix *SubmissionIndexer) Index(doc SubmissionDocument) {
	if !ix.cfg.IsUsable() {
		configslog.SLog.Info("Elastic indeksleme kapalı veya eksik yapılandırılmış, doküman atlanıyor.")
		return
	}

	indexURL := strings.TrimRight(ix.cfg.Host, "/") + "/" + url.PathEscape(ix.cfg.Index)
	docURL := indexURL + "/_doc"

	payload, err := json.Marshal(doc)
	if err != nil {
		configslog.Log.Error("Gönderim dokümanı serileştirilemedi", zap.Error(err))
		return
	}

	// İlk deneme: dokümanı indekse yaz.
	status, body, err := ix.send(http.MethodPost, docURL, payload)
	if err != nil {
		configslog.Log.Warn("Elastic isteği başarısız oldu",
			zap.String("step", "post_doc_initial"), zap.Error(err))
		return
	}
	if isSuccess(status) {
		configslog.SLog.Debugf("Gönderim dokümanı indekslendi: survey %d, responder %d", doc.SurveyID, doc.ResponderID)
		return
	}

	// İndeks henüz oluşturulmamışsa bir kez oluşturup dokümanı tekrar dene.
	if status == http.StatusNotFound && strings.Contains(body, "index_not_found_exception") {
		ix.createIndexAndRetry(indexURL, docURL, payload)
		return
	}

	// Sık rastlanan yanlış yapılandırma: security açık ama kimlik bilgisi yok.
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		configslog.Log.Warn("Elastic kimlik doğrulama reddetti",
			zap.Int("status", status),
			zap.String("hint", "Lokal gelistirme icin xpack.security.enabled=false yapin veya ELASTICSEARCH_USERNAME/PASSWORD ayarlayin."),
		)
		return
	}

	configslog.Log.Warn("Doküman indekslenemedi",
		zap.String("step", "post_doc_initial"),
		zap.Int("status", status),
		zap.String("body", truncateForLog(body)),
	)
}

// createIndexAndRetry sabit şema ile indeksi oluşturur; başarılıysa dokümanı
// tam olarak bir kez daha gönderir. Sonuç ne olursa olsun tekrar denemez.
func (ix *SubmissionIndexer) createIndexAndRetry(indexURL, docURL string, payload []byte) {
	configslog.SLog.Infof("İndeks bulunamadı, oluşturma deneniyor: %s", ix.cfg.Index)

	schema, err := json.Marshal(submissionIndexSchema())
	if err != nil {
		configslog.Log.Error("İndeks şeması serileştirilemedi", zap.Error(err))
		return
	}

	status, body, err := ix.send(http.MethodPut, indexURL, schema)
	if err != nil {
		configslog.Log.Warn("Elastic isteği başarısız oldu",
			zap.String("step", "create_index"), zap.Error(err))
		return
	}
	if !isSuccess(status) {
		configslog.Log.Warn("İndeks oluşturulamadı",
			zap.Int("status", status),
			zap.String("body", truncateForLog(body)),
		)
		return
	}

	status, body, err = ix.send(http.MethodPost, docURL, payload)
	if err != nil {
		configslog.Log.Warn("Elastic isteği başarısız oldu",
			zap.String("step", "post_doc_retry"), zap.Error(err))
		return
	}
	if isSuccess(status) {
		configslog.SLog.Info("Doküman, indeks oluşturulduktan sonra başarıyla indekslendi.")
		return
	}
	configslog.Log.Warn("Doküman tekrar denemede de indekslenemedi",
		zap.String("step", "post_doc_retry"),
		zap.Int("status", status),
		zap.String("body", truncateForLog(body)),
	)
}

// send isteği gönderir; durum kodu ile tam gövdeyi döndürür. Gövde hata
// tespiti için kırpılmadan okunur; loglara yazılırken truncateForLog uygulanır.
func (ix *SubmissionIndexer) send(method, targetURL string, payload []byte) (int, string, error) {
	req, err := http.NewRequest(method, targetURL, bytes.NewReader(payload))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if ix.cfg.Username != "" && ix.cfg.Password != "" {
		req.SetBasicAuth(ix.cfg.Username, ix.cfg.Password)
	}

	resp, err := ix.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), nil
}

// truncateForLog log alanlarına yazılan gövdeyi sınırlar.
func truncateForLog(body string) string {
	if len(body) > maxLoggedBodyLength {
		return body[:maxLoggedBodyLength]
	}
	return body
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// submissionIndexSchema indeks oluşturma isteğinin sabit şemasıdır:
// tek shard, replikasız; cevap listesi nested olarak maplenir.
func submissionIndexSchema() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"number_of_shards":   1,
			"number_of_replicas": 0,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"survey_id":    map[string]any{"type": "integer"},
				"responder_id": map[string]any{"type": "integer"},
				"submitted_at": map[string]any{"type": "date"},
				"ip":           map[string]any{"type": "ip"},
				"user_agent":   map[string]any{"type": "keyword"},
				"answers": map[string]any{
					"type": "nested",
					"properties": map[string]any{
						"question_id":   map[string]any{"type": "integer"},
						"responder_id":  map[string]any{"type": "integer"},
						"response_data": map[string]any{"type": "object", "enabled": true},
					},
				},
			},
		},
	}
}

// SubmissionIndexJob dispatcher üzerinden çalıştırılan indeksleme işidir.
type SubmissionIndexJob struct {
	indexer *SubmissionIndexer
	doc     SubmissionDocument
}

// NewSubmissionIndexJob verilen doküman için bir iş oluşturur.
func NewSubmissionIndexJob(indexer *SubmissionIndexer, doc SubmissionDocument) *SubmissionIndexJob {
	return &SubmissionIndexJob{indexer: indexer, doc: doc}
}

func (j *SubmissionIndexJob) Name() string { return "submission_index" }

func (j *SubmissionIndexJob) Handle() { j.indexer.Index(j.doc) }

var _ Job = (*SubmissionIndexJob)(nil)
