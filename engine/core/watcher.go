package core

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a configuration file whenever it is written and
// publishes the decoded result on Configs. Decode failures go to Errors and
// the previous configuration stays in effect.
type ConfigWatcher struct {
	path string

	mutex   sync.RWMutex
	current *Config

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	configs  chan *Config
	errors   chan error
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// watch the directory, editors often replace the file instead of writing it
	if err := fsWatch.Add(filepath.Dir(path)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     filepath.Clean(path),
		current:  cfg,
		fsnotify: fsWatch,
		configs:  make(chan *Config, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	go cw.start()

	return cw, nil
}

func (cw *ConfigWatcher) Current() *Config {
	cw.mutex.RLock()
	defer cw.mutex.RUnlock()
	return cw.current
}

func (cw *ConfigWatcher) Configs() <-chan *Config {
	return cw.configs
}

func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	if cw.isClosed {
		return errors.New("config watcher already closed")
	}
	cw.isClosed = true
	close(cw.done)
	return nil
}

func (cw *ConfigWatcher) start() {
	for {
		select {
		case e := <-cw.fsnotify.Events:
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			cw.reload()

		case e := <-cw.fsnotify.Errors:
			LogError(e.Error())
			cw.publishError(e)

		case <-cw.done:
			cw.fsnotify.Close()
			close(cw.configs)
			close(cw.errors)
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		LogWarn("config reload of '%s' failed: %s", cw.path, err)
		cw.publishError(err)
		return
	}

	cw.mutex.Lock()
	cw.current = cfg
	cw.mutex.Unlock()

	// drop a stale pending config, only the latest matters
	select {
	case <-cw.configs:
	default:
	}
	select {
	case cw.configs <- cfg:
	case <-cw.done:
	}
}

func (cw *ConfigWatcher) publishError(err error) {
	select {
	case cw.errors <- err:
	default:
	}
}
