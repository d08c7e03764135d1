package tracker

import (
	"fmt"
	"hydrod/internal/models"
	"hydrod/internal/providers"
	"hydrod/internal/services"
	"hydrod/internal/tracker/interfaces"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileManager writes and reads compressed session snapshots.
type FileManager struct {
	service    services.HydrationServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.HydrationServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes the session to fileName through a temporary file and a
// rename, so a crash never leaves a truncated snapshot behind.
func (f *FileManager) SaveToFile(fileName string) error {
	state := f.service.ExportState()

	jsonData, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return fmt.Errorf("compress session: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

// LoadFromFile restores the session from fileName. A missing file is not an
// error: the session keeps its seed values.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.Infof(providers.TypeApp, "No snapshot at %s, starting a fresh session", fileName)
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var state models.SessionState
	if err := json.Unmarshal(decompressed, &state); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	if state.Version != models.SessionStateVersion {
		return fmt.Errorf("unsupported snapshot version %d", state.Version)
	}

	if err := f.service.RestoreState(&state); err != nil {
		return err
	}
	f.logger.Infof(providers.TypeApp, "Restored session with %d drinks and %d reminders", len(state.Drinks), len(state.Reminders))
	return nil
}

func (f *FileManager) Close() {
	f.compressor.Close()
}
