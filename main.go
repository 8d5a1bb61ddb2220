/*
This is an example of application that will use the
vertex layer through a recording backend to test things out
*/
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima-vertex/engine/core"
	"github.com/spaghettifunk/anima-vertex/engine/math"
	"github.com/spaghettifunk/anima-vertex/testbed"
)

func main() {
	configPath := flag.String("config", "config.toml", "path of the configuration file")
	instances := flag.Int("instances", 4, "number of instances of the instanced draw (1-64)")
	watch := flag.Bool("watch", false, "run again every time the configuration file changes")
	flag.Parse()

	config, err := core.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		core.LogWarn("configuration '%s' not found, using defaults", *configPath)
		config = core.DefaultConfig()
	} else if err != nil {
		core.LogFatal("unable to load configuration: %s", err.Error())
	}

	n := math.Clamp(*instances, 1, 64)
	if err := run(config, n); err != nil {
		core.LogFatal(err.Error())
	}
	if !*watch {
		return
	}

	watcher, err := core.NewConfigWatcher(*configPath)
	if err != nil {
		core.LogFatal("unable to watch configuration: %s", err.Error())
	}
	defer watcher.Close()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	for {
		select {
		case <-sigCh:
			return
		case config := <-watcher.Configs():
			core.LogInfo("configuration reloaded")
			if err := run(config, n); err != nil {
				core.LogError(err.Error())
			}
		case err := <-watcher.Errors():
			core.LogError("configuration reload failed: %s", err.Error())
		}
	}
}

func run(config *core.Config, instances int) error {
	if err := core.ApplyLogConfig(config.Log); err != nil {
		return err
	}

	scene, err := testbed.NewTestScene(config)
	if err != nil {
		return err
	}
	defer scene.Shutdown()

	return scene.Run(instances)
}
