package config

import (
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/dball/logtail/internal/constants"
	"github.com/dball/logtail/internal/logger"
)

// WatchFile watches the file backing v's config (if one was loaded) and
// calls onChange, debounced, whenever it is rewritten. A watcher that
// fails to start is logged and skipped: losing hot-reload capability
// must never take the daemon down. The returned stop func tears down
// the watcher; it is a no-op if no config file was loaded.
func WatchFile(v *viper.Viper, onChange func(*ServerConfig)) (stop func()) {
	path := v.GetString("config")
	if path == "" {
		return func() {}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("config watch disabled", err)
		return func() {}
	}
	if err := watcher.Add(path); err != nil {
		logger.Warn("config watch disabled", err)
		watcher.Close()
		return func() {}
	}

	done := make(chan struct{})
	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(constants.ConfigWatchDebounce, func() {
					cfg, err := Load(v)
					if err != nil {
						logger.Warn("config reload failed, keeping previous config", err)
						return
					}
					onChange(cfg)
				})
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watch error", watchErr)
			case <-done:
				return
			}
		}
	}()

	return func() { close(done) }
}
