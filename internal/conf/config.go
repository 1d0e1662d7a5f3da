package conf

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/logutil"
	"os"
	"strings"
)

var lookupEnv = os.LookupEnv

// Config - Configuration for the chainhashmap command
//   - Capacity is the number of buckets, 0 (zero) means the operator is asked for it
//   - MaxKeyLength is the maximum number of bytes in a key
//   - KeyPolicy is either KeyPolicyReject or KeyPolicyTruncate
//   - HashAlgorithm is the name of a built-in hash algorithm
//   - Log is the logger configuration
type Config struct {
	Capacity      int64             `toml:"capacity"`
	MaxKeyLength  int               `toml:"max_key_length"`
	KeyPolicy     string            `toml:"key_policy"`
	HashAlgorithm string            `toml:"hash_algorithm"`
	Log           logutil.LogConfig `toml:"log"`
}

// DefaultConfig - Returns the configuration used when no config file is given
func DefaultConfig() Config {
	return Config{
		Capacity:      0,
		MaxKeyLength:  DefaultMaxKeyLength,
		KeyPolicy:     KeyPolicyReject,
		HashAlgorithm: hash.Shift,
		Log: logutil.LogConfig{
			Level:   "info",
			Format:  "console",
			MaxSize: 512,
		},
	}
}

// ResolvePath - Returns the config file path to use, the flag value wins over the environment variable.
// An empty path means no config file.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p, ok := lookupEnv(ConfigEnvVar); ok {
		return p
	}
	return ""
}

// LoadConfig - Reads the TOML file at path on top of DefaultConfig and validates the result.
// An empty path returns the default configuration.
func LoadConfig(path string) (config Config, err error) {
	config = DefaultConfig()
	if path == "" {
		return
	}

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		err = fmt.Errorf("error while reading config file %s: %w", path, err)
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		err = fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
		return
	}

	err = config.Validate()

	return
}

// Validate - Checks that the configuration values are usable
func (C Config) Validate() error {
	if C.Capacity < 0 || C.Capacity > MaxCapacity {
		return fmt.Errorf("capacity must be between 1 and %d, or 0 (zero) to ask for it", MaxCapacity)
	}
	if C.MaxKeyLength <= 0 {
		return fmt.Errorf("max key length must be a positive value higher than 0 (zero)")
	}
	if C.KeyPolicy != KeyPolicyReject && C.KeyPolicy != KeyPolicyTruncate {
		return fmt.Errorf("key policy must be %q or %q", KeyPolicyReject, KeyPolicyTruncate)
	}
	if _, err := hash.NewHashAlgorithm(C.HashAlgorithm, 1); err != nil {
		return err
	}

	return nil
}
