package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const recordsKey = "records"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for best time storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "layerhop",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// loadRecords returns best finish times in seconds keyed by level name.
func loadRecords() map[string]float64 {
	records := map[string]float64{}
	if !gdataInitialized || gdataManager == nil {
		return records
	}

	data, err := gdataManager.LoadItem(recordsKey)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return records
	}
	if len(data) == 0 {
		return records
	}

	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("Warning: Could not parse saved records: %v", err)
		return map[string]float64{}
	}
	return records
}

// LoadBestTime returns the saved best time for a level, 0 when none.
func LoadBestTime(level string) float64 {
	return loadRecords()[level]
}

// SaveBestTime records a best time for a level.
func SaveBestTime(level string, seconds float64) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	records := loadRecords()
	records[level] = seconds
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("Warning: Could not serialize records: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(recordsKey, data); err != nil {
		log.Printf("Warning: Could not save records: %v", err)
		return err
	}
	log.Printf("New best time for %s: %.2fs", level, seconds)
	return nil
}
