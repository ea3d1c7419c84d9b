package dashboard

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/edaniels/golog"
	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
)

// reloadDebounce coalesces the burst of filesystem events an editor save
// produces into one reload.
const reloadDebounce = 100 * time.Millisecond

// fileValues is the on-disk shape of a store file.
type fileValues struct {
	Numbers  map[string]float64 `mapstructure:"numbers"`
	Strings  map[string]string  `mapstructure:"strings"`
	Booleans map[string]bool    `mapstructure:"booleans"`
}

// FileStore is a Store whose values load from a JSON file and reload
// whenever the file changes, so values can be tuned live by editing the
// file. Writes through the Store interface stay in memory; the file is
// never written back.
type FileStore struct {
	*MemStore
	path   string
	logger golog.Logger

	watcher                 *fsnotify.Watcher
	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// NewFileStore loads the given JSON file and starts watching it for
// changes. The file must exist and parse at construction.
func NewFileStore(path string, logger golog.Logger) (*FileStore, error) {
	fs := &FileStore{MemStore: NewMemStore(), path: filepath.Clean(path), logger: logger}
	if err := fs.load(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory rather than the file: editors typically replace
	// the file on save, which would drop a watch on the file itself.
	if err := watcher.Add(filepath.Dir(fs.path)); err != nil {
		return nil, multierr.Combine(err, watcher.Close())
	}
	fs.watcher = watcher

	cancelCtx, cancel := context.WithCancel(context.Background())
	fs.cancel = cancel
	debounced := debounce.New(reloadDebounce)

	fs.activeBackgroundWorkers.Add(1)
	goutils.PanicCapturingGo(func() {
		defer fs.activeBackgroundWorkers.Done()
		for {
			select {
			case <-cancelCtx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != fs.path {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				debounced(fs.reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fs.logger.Errorw("dashboard file watch error", "error", err)
			}
		}
	})
	return fs, nil
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return errors.Wrapf(err, "reading dashboard values from %s", fs.path)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "parsing dashboard values from %s", fs.path)
	}
	var values fileValues
	if err := mapstructure.Decode(raw, &values); err != nil {
		return errors.Wrapf(err, "decoding dashboard values from %s", fs.path)
	}

	for k, v := range values.Numbers {
		fs.SetNumber(k, v)
	}
	for k, v := range values.Strings {
		fs.SetString(k, v)
	}
	for k, v := range values.Booleans {
		fs.SetBool(k, v)
	}
	return nil
}

func (fs *FileStore) reload() {
	if err := fs.load(); err != nil {
		fs.logger.Errorw("reloading dashboard values", "error", err)
		return
	}
	fs.logger.Debugw("reloaded dashboard values", "path", fs.path)
}

// Close stops watching the file. Values already loaded stay readable.
func (fs *FileStore) Close() error {
	if fs.cancel != nil {
		fs.cancel()
		fs.cancel = nil
	}
	err := fs.watcher.Close()
	fs.activeBackgroundWorkers.Wait()
	return err
}
