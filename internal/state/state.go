package state

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/sintya/dinote/internal/api"
	"github.com/sintya/dinote/internal/config"
	"github.com/sintya/dinote/internal/constants"
)

// State aggregates what every command needs: the loaded config and a client
// for the notes service. It is built once in the root command and passed
// down.
type State struct {
	Config *config.Config
	Client api.Service
	Home   string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	// Flags bound through viper override the file values.
	if base := viper.GetString("base_url"); base != "" {
		cfg.BaseURL = base
	}

	return &State{
		Config: cfg,
		Client: api.NewClient(cfg.BaseURL, cfg.Timeout()),
		Home:   home,
	}, nil
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}
