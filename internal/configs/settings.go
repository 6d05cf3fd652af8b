package configs

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserFlowkitSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	// This is independent of what directory you are in, so it is ok to init here
	UserFlowkitSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "flowkit"),
	}
}
