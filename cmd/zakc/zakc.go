// Command zakc is an interactive shell around the zakc hash map.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kaplanz/zakc"
	"github.com/kaplanz/zakc/pkg/hashmap"
	"github.com/kaplanz/zakc/pkg/perf"
	"github.com/pkg/profile"
)

func main() {
	level, err := parseLevel(logName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if debugProfile != "" {
		defer profile.Start(profile.ProfilePath(debugProfile)).Stop()
	}
	if debugServer != "" {
		go listenDebug()
	}

	sh := &shell{
		logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
		scanner: bufio.NewScanner(os.Stdin),
	}
	sh.loop()
}

// shell holds the state of the command loop: the map under inspection and the
// means to talk to the user.
type shell struct {
	logger  *slog.Logger
	scanner *bufio.Scanner

	mp *hashmap.Map[string, int64]
}

// loop reads and dispatches commands until quit or end of input.
func (sh *shell) loop() {
	for {
		fmt.Print("> ")
		line, ok := sh.read()
		if !ok {
			return
		}

		switch line {
		case "help":
			sh.cmdHelp()
		case "print":
			sh.cmdPrint()
		case "new":
			sh.cmdNew()
		case "insert":
			sh.cmdInsert()
		case "remove":
			sh.cmdRemove()
		case "get":
			sh.cmdGet()
		case "contains":
			sh.cmdContains()
		case "drop":
			sh.cmdDrop()
		case "len":
			sh.cmdLen()
		case "capacity":
			sh.cmdCap()
		case "reserve":
			sh.cmdReserve()
		case "stats":
			sh.cmdStats()
		case "quit":
			return
		case "":
			// skip blank lines
		default:
			sh.logger.Error("invalid command", "command", line)
		}
	}
}

// read returns the next trimmed line of input.
func (sh *shell) read() (string, bool) {
	if !sh.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.scanner.Text()), true
}

// ask prompts the user for a single value.
func (sh *shell) ask(prompt string) (string, bool) {
	fmt.Print(prompt)
	return sh.read()
}

// created logs an error unless the map has been created.
func (sh *shell) created() bool {
	if sh.mp == nil {
		sh.logger.Error("hash map is not created")
		return false
	}
	return true
}

func (sh *shell) cmdHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  help        Print this help message")
	fmt.Println("  print       Print the entire hash map")
	fmt.Println("  new         Create a new hash map")
	fmt.Println("  insert      Insert a new key-value pair into the hash map")
	fmt.Println("  remove      Remove a key-value pair from the hash map")
	fmt.Println("  get         Retrieve the value associated with a given key")
	fmt.Println("  contains    Check if the hash map contains a given key")
	fmt.Println("  drop        Delete the entire hash map")
	fmt.Println("  len         Print the number of items in the hash map")
	fmt.Println("  capacity    Print the current capacity of the hash map")
	fmt.Println("  reserve     Change the capacity of the hash map")
	fmt.Println("  stats       Print the current heap footprint")
	fmt.Println("  quit        Exit the program")
}

func (sh *shell) cmdPrint() {
	if !sh.created() {
		return
	}

	if sh.mp.Len() == 0 {
		sh.logger.Info("hash map is empty")
	} else {
		fmt.Println("Hash map:")
		_ = sh.mp.Iterate(func(key string, value int64) error {
			fmt.Printf("  %s => %d\n", key, value)
			return nil
		})
	}
	sh.logger.Debug("map layout", "cap", sh.mp.Cap(), "len", sh.mp.Len())
}

func (sh *shell) cmdNew() {
	if sh.mp != nil {
		sh.logger.Error("hash map already exists")
		return
	}

	sh.mp = hashmap.New[string, int64](hashmap.StringHasher{})
	sh.logger.Info("hash map created")
}

func (sh *shell) cmdDrop() {
	if !sh.created() {
		return
	}

	sh.mp.Clear()
	sh.mp = nil
	sh.logger.Info("hash map deleted")
}

func (sh *shell) cmdInsert() {
	if !sh.created() {
		return
	}

	key, ok := sh.ask("Enter key: ")
	if !ok {
		return
	}
	input, ok := sh.ask("Enter value: ")
	if !ok {
		return
	}
	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		sh.logger.Error("invalid value", "value", input)
		return
	}

	sh.mp.Set(key, value)
	sh.logger.Info("item inserted")
}

func (sh *shell) cmdRemove() {
	if !sh.created() {
		return
	}

	key, ok := sh.ask("Enter key: ")
	if !ok {
		return
	}

	if value, ok := sh.mp.Remove(key); ok {
		sh.logger.Info("item removed", "value", value)
	} else {
		sh.logger.Error("item not found")
	}
}

func (sh *shell) cmdGet() {
	if !sh.created() {
		return
	}

	key, ok := sh.ask("Enter key: ")
	if !ok {
		return
	}

	if value, ok := sh.mp.Get(key); ok {
		sh.logger.Info("found item", "value", value)
	} else {
		sh.logger.Error("key not found")
	}
}

func (sh *shell) cmdContains() {
	if !sh.created() {
		return
	}

	key, ok := sh.ask("Enter key: ")
	if !ok {
		return
	}

	if sh.mp.Has(key) {
		sh.logger.Info("key exists in hash map")
	} else {
		sh.logger.Warn("key does not exist in hash map")
	}
}

func (sh *shell) cmdLen() {
	if !sh.created() {
		return
	}
	fmt.Printf("Number of items in hash map: %d\n", sh.mp.Len())
}

func (sh *shell) cmdCap() {
	if !sh.created() {
		return
	}
	fmt.Printf("Capacity of hash map: %d\n", sh.mp.Cap())
}

func (sh *shell) cmdReserve() {
	if !sh.created() {
		return
	}

	input, ok := sh.ask("Enter number of items to reserve space for: ")
	if !ok {
		return
	}
	capacity, err := strconv.Atoi(input)
	if err != nil || capacity < 0 {
		sh.logger.Error("invalid capacity", "capacity", input)
		return
	}

	sh.mp.Reserve(capacity)
	sh.logger.Info("space reserved", "cap", sh.mp.Cap())
}

func (sh *shell) cmdStats() {
	fmt.Println(perf.Now())
}

// parseLevel translates a level name into a slog level.
// The name "none" disables logging entirely.
func parseLevel(name string) (slog.Level, error) {
	switch name {
	case "none":
		return slog.LevelError + 4, nil
	case "error":
		return slog.LevelError, nil
	case "warn":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}
	return 0, fmt.Errorf("invalid log level: %q", name)
}

// ===================

var logName = "warn"
var debugServer string
var debugProfile string

func init() {
	var legalFlag bool = false
	flag.BoolVar(&legalFlag, "legal", legalFlag, "Display legal notices and exit")
	defer func() {
		if legalFlag {
			fmt.Print(zakc.LegalText())
			os.Exit(0)
		}
	}()

	flag.StringVar(&logName, "log", logName, "Logging level (none, error, warn, info, debug)")
	flag.StringVar(&debugServer, "debug-listen", debugServer, "start a profiling server on the given address")
	flag.StringVar(&debugProfile, "debug-profile", debugProfile, "write profiling data to the given directory")

	flag.Parse()
}
