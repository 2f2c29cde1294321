package config

import "os"
import "fmt"
import "time"
import "github.com/pelletier/go-toml/v2"

import "github.com/dadleyy/relay.api/relay/defs"

// Options holds the server configuration: defaults, overlaid by an optional toml file, overlaid
// by command line flags in main.
type Options struct {
	Hostname        string `toml:"hostname"`
	Port            string `toml:"port"`
	WorkerTimeoutMS int    `toml:"worker-timeout-ms"`
	WebLogQueueSize int    `toml:"web-log-queue-size"`
	AccessLogPath   string `toml:"access-log"`
	RedisURI        string `toml:"redis-uri"`
}

// Defaults returns the options used when no configuration file is present.
func Defaults() Options {
	return Options{
		Hostname:        defs.DefaultHostname,
		Port:            defs.DefaultPort,
		WorkerTimeoutMS: defs.DefaultWorkerTimeoutMS,
		WebLogQueueSize: defs.DefaultWebLogQueueSize,
	}
}

// Load reads options from the toml file at path, falling back to defaults when path is empty.
func Load(path string) (Options, error) {
	options := Defaults()

	if len(path) == 0 {
		return options, nil
	}

	data, e := os.ReadFile(path)

	if e != nil {
		return options, e
	}

	if e := toml.Unmarshal(data, &options); e != nil {
		return options, e
	}

	return options, options.Validate()
}

// Validate checks the loaded values for obvious misconfiguration.
func (options *Options) Validate() error {
	if len(options.Port) < 1 {
		return fmt.Errorf("invalid port: %q", options.Port)
	}

	if options.WorkerTimeoutMS <= 0 {
		return fmt.Errorf("invalid worker timeout: %d", options.WorkerTimeoutMS)
	}

	if options.WebLogQueueSize <= 0 {
		return fmt.Errorf("invalid web log queue size: %d", options.WebLogQueueSize)
	}

	return nil
}

// Address returns the host:port string handed to the http listener.
func (options *Options) Address() string {
	return fmt.Sprintf("%s:%s", options.Hostname, options.Port)
}

// WorkerTimeout returns the dispatcher's reply bound as a duration.
func (options *Options) WorkerTimeout() time.Duration {
	return time.Duration(options.WorkerTimeoutMS) * time.Millisecond
}
