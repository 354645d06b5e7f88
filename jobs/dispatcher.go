package jobs

import (
	"sync"

	"anket.link/configs"
	"anket.link/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job dispatcher tarafından asenkron çalıştırılabilen bir iştir.
// Handle hiçbir hata döndürmez: tüm sonuçlar işin kendi içinde loglanır,
// çağırana asla yansıtılmaz.
type Job interface {
	Name() string
	Handle()
}

type queuedJob struct {
	id  string
	job Job
}

// Dispatcher tamponlu bir kuyruk ve sabit sayıda worker ile işleri
// HTTP isteğinden bağımsız çalıştırır. Dispatch hiçbir zaman bloklamaz;
// kuyruk doluysa iş loglanarak düşürülür (best-effort sözleşmesi).
type Dispatcher struct {
	queue chan queuedJob
	wg    sync.WaitGroup
}

// NewDispatcher verilen tampon boyutu ve worker sayısıyla dispatcher oluşturur
// ve worker'ları başlatır.
func NewDispatcher(queueSize, workerCount int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	d := &Dispatcher{queue: make(chan queuedJob, queueSize)}
	for i := 0; i < workerCount; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	configslog.SLog.Infof("Job dispatcher başlatıldı: %d worker, kuyruk boyutu %d", workerCount, queueSize)
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for item := range d.queue {
		d.run(item)
	}
}

func (d *Dispatcher) run(item queuedJob) {
	// Bir işteki panic diğer işleri ve worker'ı öldürmemeli.
	defer func() {
		if r := recover(); r != nil {
			configslog.Log.Error("Job çalışırken panic oluştu",
				zap.String("job", item.job.Name()),
				zap.String("job_id", item.id),
				zap.Any("panic_info", r),
			)
		}
	}()
	item.job.Handle()
}

// Dispatch işi kuyruğa ekler. Kuyruk doluysa iş düşürülür ve uyarı loglanır;
// çağıran hiçbir durumda bloklanmaz.
func (d *Dispatcher) Dispatch(job Job) {
	item := queuedJob{id: uuid.NewString(), job: job}
	select {
	case d.queue <- item:
		configslog.SLog.Debugf("Job kuyruğa eklendi: %s (%s)", job.Name(), item.id)
	default:
		configslog.Log.Warn("Job kuyruğu dolu, iş düşürüldü",
			zap.String("job", job.Name()),
			zap.String("job_id", item.id),
		)
	}
}

// Shutdown kuyruğu kapatır ve bekleyen işler bitene kadar bekler.
func (d *Dispatcher) Shutdown() {
	close(d.queue)
	d.wg.Wait()
	configslog.SLog.Info("Job dispatcher durduruldu.")
}

var (
	defaultDispatcher *Dispatcher
	defaultIndexer    *SubmissionIndexer
)

// Setup global dispatcher'ı ve submission indexer'ı konfigürasyondan kurar.
// main tarafından bir kez çağrılır.
func Setup() {
	defaultIndexer = NewSubmissionIndexer(configs.GetElasticsearchConfig())
	defaultDispatcher = NewDispatcher(configs.GetJobQueueSize(), configs.GetJobWorkerCount())
}

// Shutdown global dispatcher'ı durdurur.
func Shutdown() {
	if defaultDispatcher != nil {
		defaultDispatcher.Shutdown()
	}
}

// EnqueueSubmissionIndex gönderim dokümanını arama indeksi kuyruğuna ekler.
// Dispatcher kurulmamışsa (örn. testler) sessizce atlanır.
func EnqueueSubmissionIndex(doc SubmissionDocument) {
	if defaultDispatcher == nil || defaultIndexer == nil {
		configslog.SLog.Debug("Dispatcher kurulmamış, indeksleme işi atlanıyor.")
		return
	}
	defaultDispatcher.Dispatch(NewSubmissionIndexJob(defaultIndexer, doc))
}
