package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const paramFilename = "param.yaml"

const defaultVolumeKey = "defaultVolume"

// Config holds the theater parameters. It is constructed once and passed by
// reference to every collaborator that needs it; there is no package-level
// instance.
type Config struct {
	ConfigDir string
	DebugMode bool

	*Param
}

func NewConfig(configDir string, debugMode bool) *Config {
	config := &Config{
		ConfigDir: configDir,
		DebugMode: debugMode,
	}

	// Check configuration folder
	_, err := os.Stat(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Printf("Creation of config folder: %s", configDir)
			err = os.MkdirAll(configDir, 0770)
			if err != nil {
				logrus.Fatalf("Unable to create config folder: %v\n", err)
			}
		} else {
			logrus.Fatalf("Unable to access config folder: %s", configDir)
		}
	}

	// Open param file
	rawConfig, err := ioutil.ReadFile(config.GetCompleteParamFilename())
	if err == nil {
		// Interpret param file
		config.Param = &Param{}
		err = yaml.Unmarshal(rawConfig, config.Param)
		if err != nil {
			logrus.Fatalf("Unable to interpret config file: %v\n", err)
		}
	} else {
		// Create default param file
		logrus.Infof("Create default param file")
		config.Param = &Param{}

		err = yaml.Unmarshal(ParamDefaultFile, config.Param)
		if err != nil {
			logrus.Fatalf("Unable to interpret config file: %v\n", err)
		}

		config.SaveParam()
	}

	// Complete omitted params with defaults
	defaultParam := &Param{}
	err = yaml.Unmarshal(ParamDefaultFile, defaultParam)
	if err != nil {
		logrus.Fatalf("Unable to interpret default config file: %v\n", err)
	}
	err = mergo.Merge(config.Param, defaultParam)
	if err != nil {
		logrus.Fatalf("Unable to complete config with defaults: %v\n", err)
	}

	return config
}

func (c *Config) GetCompleteParamFilename() string {
	return filepath.Join(c.ConfigDir, paramFilename)
}

func (c *Config) SaveParam() {
	logrus.Debugf("Save param file: %s", c.GetCompleteParamFilename())
	rawConfig, err := yaml.Marshal(*c.Param)
	if err != nil {
		logrus.Fatalf("Unable to serialize param file: %v\n", err)
	}
	err = ioutil.WriteFile(c.GetCompleteParamFilename(), rawConfig, 0660)
	if err != nil {
		logrus.Fatalf("Unable to save param file: %v\n", err)
	}
}

// Get returns a setting value, or "" when the key is absent.
func (c *Config) Get(key string) string {
	return c.Settings[key]
}

// Set stores a setting value in memory.
func (c *Config) Set(key string, value string) {
	if c.Settings == nil {
		c.Settings = map[string]string{}
	}
	c.Settings[key] = value
}

// DefaultVolume returns the configured default volume, falling back to 50
// when the setting is absent or malformed.
func (c *Config) DefaultVolume() int {
	volume, err := strconv.Atoi(c.Get(defaultVolumeKey))
	if err != nil {
		logrus.Warnf("Invalid %s setting %q, using 50", defaultVolumeKey, c.Get(defaultVolumeKey))
		return 50
	}
	return volume
}
