package config

import (
	"flag"
	"github.com/fernandosanchezjr/bitinverter/utils"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"os"
	"path"
	"runtime"
)

var configPath string

func init() {
	flag.StringVar(&configPath, "config", "", "specify config file (default <home-folder>/config.yaml)")
}

func defaultWorkers() int {
	return runtime.NumCPU()
}

// Path returns the config file in use, resolving the default under the home folder.
func Path() string {
	if configPath == "" {
		return path.Join(utils.GetHomeFolder(), "config.yaml")
	}
	return configPath
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(Path())
}

// LoadConfigFile reads a YAML config. A missing file yields the defaults.
func LoadConfigFile(filePath string) (*Config, error) {
	c := &Config{}
	var data []byte
	var err error
	log.WithField("path", filePath).Println("Loading config")
	if data, err = ioutil.ReadFile(filePath); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		log.WithField("path", filePath).Warnln("Config not found, using defaults")
	} else if err = yaml.UnmarshalStrict(data, c); err != nil {
		return nil, err
	}
	c.Defaults()
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
