package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	stackpp "github.com/KajizukaTaichi/stackpp/src"
	"golang.org/x/term"
)

var version = "dev" // set via -ldflags at build time

// ANSI color codes for terminal output
const (
	colorYellow = "\x1b[93m" // Bright yellow foreground
	colorGray   = "\x1b[90m" // Dark gray for AST/state dumps
	colorReset  = "\x1b[0m"  // Reset to default
)

// stderrSupportsColor checks if stderr is a terminal that supports color output
func stderrSupportsColor() bool {
	stderrInfo, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	// ModeCharDevice indicates a terminal
	if (stderrInfo.Mode() & os.ModeCharDevice) == 0 {
		return false
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if t := os.Getenv("TERM"); t == "dumb" {
		return false
	}
	return true
}

// errorPrintf prints an error message to stderr, using color if supported
func errorPrintf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if stderrSupportsColor() {
		fmt.Fprintf(os.Stderr, "%s%s%s", colorYellow, message, colorReset)
	} else {
		fmt.Fprint(os.Stderr, message)
	}
}

func main() {
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	verboseFlag := flag.Bool("verbose", false, "Enable verbose output (alias for -debug)")
	versionFlag := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(debugFlag, "d", false, "Enable debug output (short)")
	flag.BoolVar(verboseFlag, "v", false, "Enable verbose output (short, alias for -debug)")

	flag.Usage = showUsage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("stackpp, the Stack++ interpreter version %s (engine %s)\n", version, stackpp.Version)
		os.Exit(0)
	}

	debug := *debugFlag || *verboseFlag
	args := flag.Args()

	// Check if stdin is redirected/piped
	stdinInfo, _ := os.Stdin.Stat()
	isStdinRedirected := (stdinInfo.Mode() & os.ModeCharDevice) == 0

	var scriptContent string

	if len(args) > 0 {
		requestedFile := args[0]
		foundFile := findScriptFile(requestedFile)
		if foundFile == "" {
			errorPrintf("Error: script file not found: %s\n", requestedFile)
			if !strings.Contains(requestedFile, ".") {
				errorPrintf("Also tried: %s.spp\n", requestedFile)
			}
			os.Exit(1)
		}

		content, err := os.ReadFile(foundFile)
		if err != nil {
			errorPrintf("Error reading script file: %v\n", err)
			os.Exit(1)
		}
		scriptContent = string(content)

	} else if isStdinRedirected {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			errorPrintf("Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		scriptContent = string(content)

	} else {
		runREPL(debug)
		os.Exit(0)
	}

	ps := stackpp.New(&stackpp.Config{Debug: debug})
	ps.Run(scriptContent)
	os.Exit(0)
}

// findScriptFile tries the exact filename, then with the .spp extension
func findScriptFile(filename string) string {
	if _, err := os.Stat(filename); err == nil {
		return filename
	}
	if filepath.Ext(filename) == "" {
		sppFile := filename + ".spp"
		if _, err := os.Stat(sppFile); err == nil {
			return sppFile
		}
	}
	return ""
}

func showUsage() {
	usage := `Usage: stackpp [options] [script.spp]
       stackpp [options] < input.spp
       echo "3 4 add print" | stackpp [options]

Execute a Stack++ program from a file, stdin, or pipe. With no script and
a terminal on stdin, an interactive session starts: enter a chunk of code
and finish it with a blank line to evaluate it.

Options:
  -d, -debug     Enable debug output
  -v, -verbose   Enable verbose output (same as -debug)
  -version       Show version and exit

Arguments:
  script.spp     Script file to execute (adds .spp extension if needed)
`
	fmt.Fprint(os.Stderr, usage)
}

// runREPL runs an interactive Read-Eval-Print Loop. Stack and memory
// persist across chunks; each chunk is echoed back as its parsed program
// followed by the machine state, the way the reference interpreter does.
func runREPL(debug bool) {
	fmt.Printf("Stack++ %s\n", version)
	fmt.Println("Finish a chunk with a blank line to evaluate it. Type 'exit' or 'quit' to leave.")
	fmt.Println()

	ps := stackpp.New(&stackpp.Config{Debug: debug})

	// Put terminal in raw mode for key handling
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "REPL requires a terminal")
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		return
	}
	defer term.Restore(fd, oldState)

	history := make([]string, 0, 100)
	historyPos := 0

	for {
		chunk, quit := readChunk(fd, history, &historyPos)
		if quit {
			fmt.Print("\r\n")
			break
		}

		// Add to history if non-empty and different from last entry
		trimmed := strings.TrimSpace(chunk)
		if trimmed != "" {
			if len(history) == 0 || history[len(history)-1] != trimmed {
				history = append(history, trimmed)
			}
			historyPos = len(history)
		}

		if trimmed == "" {
			continue
		}

		lower := strings.ToLower(trimmed)
		if lower == "exit" || lower == "quit" {
			break
		}

		// Temporarily restore terminal so print/input behave normally
		term.Restore(fd, oldState)

		program := stackpp.Parse(chunk)
		dumpPrintf("AST    : %s\n", stackpp.FormatProgram(program))
		ps.Evaluate(program)
		dumpPrintf("Result : %s\n", ps.Machine())

		// Back to raw mode
		oldState, _ = term.MakeRaw(fd)
	}
}

// dumpPrintf prints a REPL diagnostic line in dim gray when possible
func dumpPrintf(format string, args ...interface{}) {
	if stderrSupportsColor() {
		fmt.Printf("%s%s%s", colorGray, fmt.Sprintf(format, args...), colorReset)
	} else {
		fmt.Printf(format, args...)
	}
}

// readChunk reads lines until a blank line terminates the chunk. The
// caller commits finished chunks to history. Returns the chunk and a
// quit flag.
func readChunk(fd int, history []string, historyPos *int) (string, bool) {
	var lines []string
	var currentLine []rune
	cursorPos := 0
	savedLine := ""    // Saved current line when browsing history
	inHistory := false // Are we browsing history?

	printPrompt := func() {
		fmt.Print(colorYellow + ">" + colorReset + " ")
	}

	redrawLine := func() {
		// Clear line and redraw
		fmt.Print("\r\x1b[K")
		printPrompt()
		fmt.Print(string(currentLine))
		if cursorPos < len(currentLine) {
			fmt.Printf("\x1b[%dD", len(currentLine)-cursorPos)
		}
	}

	printPrompt()

	buf := make([]byte, 32)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return "", true
		}

		i := 0
		for i < n {
			b := buf[i]
			i++

			// Handle escape sequences
			if b == 0x1b && i < n && buf[i] == '[' {
				i++ // consume '['
				if i < n {
					switch buf[i] {
					case 'A': // Up arrow
						i++
						if len(history) > 0 && *historyPos > 0 {
							if !inHistory {
								savedLine = string(currentLine)
								inHistory = true
							}
							*historyPos--
							currentLine = []rune(history[*historyPos])
							cursorPos = len(currentLine)
							redrawLine()
						}
						continue
					case 'B': // Down arrow
						i++
						if inHistory {
							if *historyPos < len(history)-1 {
								*historyPos++
								currentLine = []rune(history[*historyPos])
								cursorPos = len(currentLine)
							} else {
								*historyPos = len(history)
								currentLine = []rune(savedLine)
								cursorPos = len(currentLine)
								inHistory = false
							}
							redrawLine()
						}
						continue
					case 'C': // Right arrow
						i++
						if cursorPos < len(currentLine) {
							cursorPos++
							fmt.Print("\x1b[C")
						}
						continue
					case 'D': // Left arrow
						i++
						if cursorPos > 0 {
							cursorPos--
							fmt.Print("\x1b[D")
						}
						continue
					case '3': // Possible Delete key
						i++
						if i < n && buf[i] == '~' {
							i++
							if cursorPos < len(currentLine) {
								currentLine = append(currentLine[:cursorPos], currentLine[cursorPos+1:]...)
								redrawLine()
							}
						}
						continue
					case 'H': // Home
						i++
						if cursorPos > 0 {
							fmt.Printf("\x1b[%dD", cursorPos)
							cursorPos = 0
						}
						continue
					case 'F': // End
						i++
						if cursorPos < len(currentLine) {
							fmt.Printf("\x1b[%dC", len(currentLine)-cursorPos)
							cursorPos = len(currentLine)
						}
						continue
					}
				}
				// Skip unknown escape sequence
				continue
			}

			switch b {
			case 0x03: // Ctrl+C
				fmt.Print("^C\r\n")
				return "", true

			case 0x04: // Ctrl+D
				if len(currentLine) == 0 && len(lines) == 0 {
					fmt.Print("\r\n")
					return "", true
				}

			case 0x7f, 0x08: // Backspace
				if cursorPos > 0 {
					currentLine = append(currentLine[:cursorPos-1], currentLine[cursorPos:]...)
					cursorPos--
					redrawLine()
				}

			case '\r', '\n': // Enter
				fmt.Print("\r\n")
				line := string(currentLine)

				// A blank line closes the chunk
				if line == "" {
					return strings.Join(lines, "\n"), false
				}

				lines = append(lines, line)
				currentLine = nil
				cursorPos = 0
				inHistory = false
				printPrompt()

			case 0x15: // Ctrl+U - clear line
				currentLine = nil
				cursorPos = 0
				redrawLine()

			case 0x0b: // Ctrl+K - kill to end of line
				currentLine = currentLine[:cursorPos]
				redrawLine()

			case 0x01: // Ctrl+A - beginning of line
				if cursorPos > 0 {
					fmt.Printf("\x1b[%dD", cursorPos)
					cursorPos = 0
				}

			case 0x05: // Ctrl+E - end of line
				if cursorPos < len(currentLine) {
					fmt.Printf("\x1b[%dC", len(currentLine)-cursorPos)
					cursorPos = len(currentLine)
				}

			default:
				// Regular character - might be part of UTF-8 sequence
				if b >= 32 && b < 127 {
					currentLine = append(currentLine[:cursorPos], append([]rune{rune(b)}, currentLine[cursorPos:]...)...)
					cursorPos++
					inHistory = false
					redrawLine()
				} else if b >= 0xC0 {
					// UTF-8 start byte - collect full character
					charBytes := []byte{b}
					for i < n && buf[i] >= 0x80 && buf[i] < 0xC0 {
						charBytes = append(charBytes, buf[i])
						i++
					}
					r, _ := utf8.DecodeRune(charBytes)
					if r != utf8.RuneError {
						currentLine = append(currentLine[:cursorPos], append([]rune{r}, currentLine[cursorPos:]...)...)
						cursorPos++
						inHistory = false
						redrawLine()
					}
				}
			}
		}
	}
}
