package repl

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashmap"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"go.uber.org/zap"
	"io"
	"strconv"
	"strings"
)

const menu = "1) set  2) get  3) delete  4) list  5) stats  0) quit\n"

// errQuit - Returned by the quit action to end the menu loop
var errQuit = errors.New("quit")

// action - A menu action, the chain hash map is handed to every action by the loop owning it
type action func(R *REPL, chainMap *chainhashmap.ChainMap) error

var actions = map[string]action{
	"1": setAction,
	"2": getAction,
	"3": deleteAction,
	"4": listAction,
	"5": statAction,
	"0": quitAction,
}

// REPL - Interactive menu driving a chain hash map from line based input
type REPL struct {
	reader *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// New - Returns a pointer to a new REPL reading from in and writing prompts and results to out
func New(in io.Reader, out io.Writer, logger *zap.Logger) *REPL {
	return &REPL{
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// ReadCapacity - Asks the operator for a capacity until a valid one is given.
// It returns io.EOF if input ends before that.
func (R *REPL) ReadCapacity() (int64, error) {
	for {
		line, err := R.prompt("Capacity: ")
		if err != nil {
			return 0, err
		}

		capacity, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil || capacity < 1 || capacity > conf.MaxCapacity {
			R.printf("capacity must be a number between 1 and %d\n", conf.MaxCapacity)
			continue
		}

		return capacity, nil
	}
}

// Run - Shows the menu and executes chosen actions until quit is chosen or input ends
func (R *REPL) Run(chainMap *chainhashmap.ChainMap) error {
	for {
		R.printf(menu)
		choice, err := R.prompt("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		act, ok := actions[strings.TrimSpace(choice)]
		if !ok {
			R.printf("unknown choice %q\n", strings.TrimSpace(choice))
			continue
		}

		err = act(R, chainMap)
		if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Demo - Stores four records and prints them back
func (R *REPL) Demo(chainMap *chainhashmap.ChainMap) error {
	records := []chainhashmap.Entry{{Key: "key1", Value: 1}, {Key: "key2", Value: 2}, {Key: "key3", Value: 5}, {Key: "key4", Value: 4}}
	for _, r := range records {
		if err := chainMap.Set(r.Key, r.Value); err != nil {
			return err
		}
	}

	for _, r := range records {
		R.printValue(chainMap, r.Key)
	}

	return nil
}

func setAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	key, err := R.prompt("Key: ")
	if err != nil {
		return err
	}
	line, err := R.prompt("Value: ")
	if err != nil {
		return err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		R.printf("invalid value %q\n", strings.TrimSpace(line))
		return nil
	}

	if err = chainMap.Set(key, value); err != nil {
		R.logger.Warn("set failed", zap.String("key", key), zap.Error(err))
		R.printf("error: %s\n", err)
		return nil
	}

	R.logger.Debug("set", zap.String("key", key), zap.Int64("value", value))
	R.printf("ok\n")

	return nil
}

func getAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	key, err := R.prompt("Key: ")
	if err != nil {
		return err
	}

	R.printValue(chainMap, key)

	return nil
}

func deleteAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	key, err := R.prompt("Key: ")
	if err != nil {
		return err
	}

	err = chainMap.Delete(key)
	switch {
	case err == nil:
		R.logger.Debug("delete", zap.String("key", key))
		R.printf("deleted %s\n", key)
	case errors.Is(err, crt.NoRecordFound{}):
		R.printf("%s: not found\n", key)
	default:
		R.logger.Warn("delete failed", zap.String("key", key), zap.Error(err))
		R.printf("error: %s\n", err)
	}

	return nil
}

func listAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	if chainMap.Len() == 0 {
		R.printf("(empty)\n")
		return nil
	}

	chainMap.ForEach(func(key string, value int64) {
		R.printf("%s = %d\n", key, value)
	})
	R.printf("%d record(s)\n", chainMap.Len())

	return nil
}

func statAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	stat := chainMap.Stat(false)
	R.printf("records: %d\nbuckets: %d\nused buckets: %d\nlongest chain: %d\nload factor: %.2f\n",
		stat.Records, chainMap.Capacity(), stat.UsedBuckets, stat.LongestChain, stat.LoadFactor)

	return nil
}

func quitAction(R *REPL, chainMap *chainhashmap.ChainMap) error {
	return errQuit
}

// printValue - Prints the value of key, or that it was not found which is never printed as a value
func (R *REPL) printValue(chainMap *chainhashmap.ChainMap, key string) {
	value, err := chainMap.Get(key)
	switch {
	case err == nil:
		R.printf("%s = %d\n", key, value)
	case errors.Is(err, crt.NoRecordFound{}):
		R.printf("%s: not found\n", key)
	default:
		R.logger.Warn("get failed", zap.String("key", key), zap.Error(err))
		R.printf("error: %s\n", err)
	}
}

// prompt - Writes label and returns the next input line without its line ending
func (R *REPL) prompt(label string) (string, error) {
	R.printf("%s", label)
	line, err := R.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (R *REPL) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(R.out, format, args...)
}
