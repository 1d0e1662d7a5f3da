package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/logutil"
	"github.com/gostonefire/chainhashmap/internal/repl"
	"go.uber.org/zap"
	"io"
	"os"
)

// options - Command line flags, zero values mean "not given"
type options struct {
	configPath string
	capacity   int64
	logLevel   string
	demo       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", fmt.Sprintf("path to TOML config file (defaults to $%s)", conf.ConfigEnvVar))
	flag.Int64Var(&opts.capacity, "capacity", 0, "number of buckets, overrides the config file")
	flag.StringVar(&opts.logLevel, "log-level", "", "log level, overrides the config file")
	flag.BoolVar(&opts.demo, "demo", false, fmt.Sprintf("store and print four records in a %d bucket map and exit", conf.DemoCapacity))
	flag.Parse()

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, in io.Reader, out io.Writer) (err error) {
	config, err := conf.LoadConfig(conf.ResolvePath(opts.configPath))
	if err != nil {
		return
	}
	if opts.capacity != 0 {
		config.Capacity = opts.capacity
	}
	if opts.logLevel != "" {
		config.Log.Level = opts.logLevel
	}
	if opts.demo {
		config.Capacity = conf.DemoCapacity
	}
	if err = config.Validate(); err != nil {
		return
	}

	logger, err := logutil.NewLogger(config.Log)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()

	r := repl.New(in, out, logger)

	if config.Capacity == 0 {
		config.Capacity, err = r.ReadCapacity()
		if err != nil {
			err = fmt.Errorf("no capacity given: %w", err)
			return
		}
	}

	chainMap, err := newChainMap(config)
	if err != nil {
		logger.Error("unable to create chain hash map", zap.Int64("capacity", config.Capacity), zap.Error(err))
		return
	}
	logger.Info("chain hash map created",
		zap.Int64("capacity", chainMap.Capacity()),
		zap.String("hash_algorithm", config.HashAlgorithm),
		zap.String("key_policy", config.KeyPolicy),
		zap.Int("max_key_length", config.MaxKeyLength))

	if opts.demo {
		return r.Demo(chainMap)
	}

	err = r.Run(chainMap)
	logger.Info("bye", zap.Int64("records", chainMap.Len()))

	return
}

// newChainMap - Creates the chain hash map described by config
func newChainMap(config conf.Config) (chainMap *chainhashmap.ChainMap, err error) {
	mapConf := chainhashmap.Conf{
		Capacity:     config.Capacity,
		MaxKeyLength: config.MaxKeyLength,
		KeyPolicy:    chainhashmap.RejectLongKeys,
	}
	if config.KeyPolicy == conf.KeyPolicyTruncate {
		mapConf.KeyPolicy = chainhashmap.TruncateLongKeys
	}

	// The shift algorithm is the map's internal default
	if config.HashAlgorithm != hash.Shift && config.HashAlgorithm != "" {
		mapConf.HashAlgorithm, err = hash.NewHashAlgorithm(config.HashAlgorithm, config.Capacity)
		if err != nil {
			return
		}
	}

	chainMap, err = chainhashmap.NewChainMapFromConf(mapConf)

	return
}
