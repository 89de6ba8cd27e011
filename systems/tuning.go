package systems

import (
	"log"

	"github.com/automoto/layerhop/config"
	"github.com/yohamta/donburi/ecs"
)

var tuningWatcher *config.TuningWatcher

// WatchTuning loads a YAML tuning file and reloads it whenever it changes.
func WatchTuning(path, dir string) error {
	if err := config.LoadTuning(path); err != nil {
		return err
	}
	w, err := config.NewTuningWatcher(dir)
	if err != nil {
		return err
	}
	tuningWatcher = w
	log.Printf("Watching %s for tuning changes", dir)
	return nil
}

// UpdateTuning applies tuning edits picked up since the last tick.
func UpdateTuning(_ *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	for {
		select {
		case path := <-tuningWatcher.Events:
			if err := config.LoadTuning(path); err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err := <-tuningWatcher.Errors:
			log.Printf("Warning: Tuning watcher: %v", err)
		default:
			return
		}
	}
}

// StopTuning closes the tuning watcher.
func StopTuning() {
	if tuningWatcher != nil {
		_ = tuningWatcher.Close()
		tuningWatcher = nil
	}
}
