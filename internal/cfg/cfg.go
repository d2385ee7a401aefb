// Package cfg holds the application config stored in ltool.yaml beside the
// executable.
package cfg

import (
	"fmt"
	"github.com/ansel1/merry"
	"github.com/fpawel/ltool/internal/pkg/cfgfile"
	"gopkg.in/yaml.v3"
	"net"
	"os"
	"sync"
)

type Config struct {
	Addr        string `yaml:"addr"`
	LogRequests bool   `yaml:"log_requests"`
}

func Get() Config {
	mu.Lock()
	defer mu.Unlock()
	return config
}

func Set(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	if err := file.Set(c); err != nil {
		return err
	}
	config = c
	return nil
}

func SetYaml(strYaml []byte) error {
	var c Config
	if err := yaml.Unmarshal(strYaml, &c); err != nil {
		return err
	}
	return Set(c)
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return merry.Appendf(err, "addr %q must be host:port", c.Addr)
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Addr:        "127.0.0.1:6680",
		LogRequests: true,
	}
}

var (
	mu     sync.Mutex
	config Config
	file   = cfgfile.New("ltool.yaml", yaml.Marshal, yaml.Unmarshal)
)

func init() {
	c := defaultConfig()
	if err := file.Get(&c); err != nil {
		if !os.IsNotExist(err) {
			fmt.Println(err, "file:", file.Filename())
		}
		c = defaultConfig()
		if err := file.Set(c); err != nil {
			fmt.Println(err, "file:", file.Filename())
		}
	}
	if err := c.Validate(); err != nil {
		fmt.Println(err, "file:", file.Filename())
		c = defaultConfig()
	}
	config = c
}
