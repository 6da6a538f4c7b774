package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"

	"mboot/engine"
	"mboot/link"
	"mboot/taxonomy"
)

var (
	configPath = flag.String("config", "", "YAML profile path (default ~/.mboot.yaml) supplying transport/device/baud defaults")
	transport  = flag.String("transport", "uart", "Transport to use: uart, i2c or usbhid")
	device     = flag.String("device", "/dev/ttyACM0", "Transport identifier (serial device path, i2c bus[:slave], or vid:pid for usbhid)")
	baud       = flag.Int("baud", 57600, "Baud rate (uart only)")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	applyProfileDefaults()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	fmt.Println("mboot - MCU Bootloader Host Console")
	fmt.Println("====================================")

	l, err := openLink()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open %s link on %s: %v\n", *transport, *device, err)
		os.Exit(1)
	}
	defer l.Close()

	fmt.Printf("Connected via %s to %s\n", *transport, l.Identifier())

	s := engine.Open(l)
	defer s.Close()

	fmt.Println("Enter commands (type 'help' for available commands, 'quit' to exit):")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		fields, err := shlex.Split(scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if len(fields) == 0 {
			continue
		}

		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return

		case "help", "?":
			printHelp()

		case "get-property":
			runGetProperty(s, args)

		case "set-property":
			runSetProperty(s, args)

		case "reset":
			runReset(s)

		case "flash-erase-region":
			runFlashEraseRegion(s, args)

		case "flash-erase-all":
			runFlashEraseAll(s, args)

		case "read-memory":
			runReadMemory(s, args)

		case "write-memory":
			runWriteMemory(s, args)

		default:
			fmt.Printf("Unknown command: %s (type 'help' for available commands)\n", cmd)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// applyProfileDefaults loads the YAML profile and overrides transport,
// device and baud with its values, but only for flags the caller did not
// pass explicitly on the command line.
func applyProfileDefaults() {
	p, err := loadProfile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load profile: %v\n", err)
		os.Exit(1)
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["transport"] && p.Transport != "" {
		*transport = p.Transport
	}
	if !set["device"] && p.Device != "" {
		*device = p.Device
	}
	if !set["baud"] && p.Baud != 0 {
		*baud = p.Baud
	}
}

func openLink() (link.Link, error) {
	switch *transport {
	case "uart":
		return link.OpenUART(*device, *baud)
	case "i2c":
		return link.OpenI2C(*device)
	case "usbhid":
		return nil, fmt.Errorf("usbhid transport requires an injected link.Conn; not wired into this console")
	default:
		return nil, fmt.Errorf("unknown transport %q", *transport)
	}
}

func printHelp() {
	fmt.Println("\nAvailable commands:")
	fmt.Println("  get-property <tag> [memoryIndex]        - Query a device property")
	fmt.Println("  set-property <tag> <value>               - Set a device property")
	fmt.Println("  reset                                     - Reset the device")
	fmt.Println("  flash-erase-all <memoryId>                - Erase all flash in a memory")
	fmt.Println("  flash-erase-region <addr> <count> <memId> - Erase a flash region")
	fmt.Println("  read-memory <addr> <count> <memId>        - Read memory and print hex")
	fmt.Println("  write-memory <addr> <memId> <hexbytes>    - Write hex-encoded bytes")
	fmt.Println("  help                                      - Show this help message")
	fmt.Println("  quit/exit/q                               - Exit the program")
	fmt.Println()
}

func runGetProperty(s *engine.Session, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: get-property <tag> [memoryIndex]")
		return
	}
	tag, err := parseUint(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	var memoryIndex uint64
	if len(args) > 1 {
		memoryIndex, err = parseUint(args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
	}
	result, err := s.GetProperty(taxonomy.PropertyTag(tag), uint32(memoryIndex))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s words=%v property=%+v\n", result.Status, result.ResponseWords, result.Property)
}

func runSetProperty(s *engine.Session, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: set-property <tag> <value>")
		return
	}
	tag, err := parseUint(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	value, err := parseUint(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	status, err := s.SetProperty(taxonomy.PropertyTag(tag), uint32(value))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s\n", status)
}

func runReset(s *engine.Session) {
	status, err := s.Reset()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s\n", status)
}

func runFlashEraseAll(s *engine.Session, args []string) {
	if len(args) < 1 {
		fmt.Println("usage: flash-erase-all <memoryId>")
		return
	}
	memoryID, err := parseUint(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	status, err := s.FlashEraseAll(uint32(memoryID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s\n", status)
}

func runFlashEraseRegion(s *engine.Session, args []string) {
	if len(args) < 3 {
		fmt.Println("usage: flash-erase-region <addr> <count> <memoryId>")
		return
	}
	addr, err1 := parseUint(args[0])
	count, err2 := parseUint(args[1])
	memoryID, err3 := parseUint(args[2])
	if err := firstErr(err1, err2, err3); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	status, err := s.FlashEraseRegion(uint32(addr), uint32(count), uint32(memoryID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s\n", status)
}

func runReadMemory(s *engine.Session, args []string) {
	if len(args) < 3 {
		fmt.Println("usage: read-memory <addr> <count> <memoryId>")
		return
	}
	addr, err1 := parseUint(args[0])
	count, err2 := parseUint(args[1])
	memoryID, err3 := parseUint(args[2])
	if err := firstErr(err1, err2, err3); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	result, err := s.ReadMemory(uint32(addr), uint32(count), uint32(memoryID))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s bytes=% X\n", result.Status, result.Bytes)
}

func runWriteMemory(s *engine.Session, args []string) {
	if len(args) < 3 {
		fmt.Println("usage: write-memory <addr> <memoryId> <hexbytes>")
		return
	}
	addr, err1 := parseUint(args[0])
	memoryID, err2 := parseUint(args[1])
	if err := firstErr(err1, err2); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	data, err := parseHexBytes(args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	status, err := s.WriteMemory(uint32(addr), uint32(memoryID), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Printf("status=%s\n", status)
}

func parseUint(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

func parseHexBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("hex string %q has odd length", s)
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
