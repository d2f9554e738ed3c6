package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/lett-lang/lett/internal/cli"
	"github.com/lett-lang/lett/internal/eval"
	"github.com/lett-lang/lett/internal/grammar"
	"github.com/lett-lang/lett/internal/lexer"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		debugMode   = flag.Bool("debug", false, "enable debug mode")
		noPrompt    = flag.Bool("no-prompt", false, "disable interactive prompt")
		evalStr     = flag.String("eval", "", "evaluate expression and exit")
		loadFile    = flag.String("load", "", "load and evaluate file before starting REPL")
		historyFile = flag.String("history", ".lett_history", "history file path")
		maxHistory  = flag.Int("max-history", 1000, "maximum history entries")
		require     = flag.String("require", "", "require tool version to satisfy SemVer constraint")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Lett interactive REPL (Read-Eval-Print Loop).\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nREPL COMMANDS:\n")
		fmt.Fprintf(os.Stderr, "  :help, :h          Show help\n")
		fmt.Fprintf(os.Stderr, "  :quit, :q, :exit   Exit REPL\n")
		fmt.Fprintf(os.Stderr, "  :clear, :c         Clear screen\n")
		fmt.Fprintf(os.Stderr, "  :reset             Reset environment\n")
		fmt.Fprintf(os.Stderr, "  :load <file>       Load and evaluate file\n")
		fmt.Fprintf(os.Stderr, "  :save <file>       Save current session\n")
		fmt.Fprintf(os.Stderr, "  :history           Show command history\n")
		fmt.Fprintf(os.Stderr, "  :vars              Show current variables\n")
		fmt.Fprintf(os.Stderr, "  :debug on|off      Toggle debug mode\n")
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                              # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --eval \"let x = 2 in x + 3\"  # Evaluate expression\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --load init.lett             # Load file and start REPL\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		cli.PrintVersion("Lett REPL", *jsonOutput)
		os.Exit(0)
	}

	cli.RequireVersion("lett-repl", *require)

	repl := NewREPL(*debugMode, *historyFile, *maxHistory)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		repl.SaveHistory()
		os.Exit(0)
	}()

	// Load history
	repl.LoadHistory()

	// Load file if specified
	if *loadFile != "" {
		if err := repl.LoadFile(*loadFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
			os.Exit(1)
		}
	}

	// Evaluate expression if specified
	if *evalStr != "" {
		result, err := repl.Evaluate(*evalStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result)
		os.Exit(0)
	}

	repl.PrintWelcome()
	repl.Run(*noPrompt)
}

type REPL struct {
	debug       bool
	historyFile string
	maxHistory  int
	history     []string
	env         *eval.Env
	defined     map[string]int64
	scanner     *bufio.Scanner
}

func NewREPL(debug bool, historyFile string, maxHistory int) *REPL {
	return &REPL{
		debug:       debug,
		historyFile: historyFile,
		maxHistory:  maxHistory,
		history:     make([]string, 0),
		defined:     make(map[string]int64),
		scanner:     bufio.NewScanner(os.Stdin),
	}
}

func (r *REPL) PrintWelcome() {
	info := cli.GetVersionInfo()
	fmt.Printf("Lett REPL v%s\n", info.Version)
	fmt.Printf("Type :help for help, :quit to exit\n")
	fmt.Println()
}

func (r *REPL) Run(noPrompt bool) {
	for {
		if !noPrompt {
			fmt.Print("lett> ")
		}

		if !r.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		r.AddToHistory(line)

		if strings.HasPrefix(line, ":") {
			if r.HandleCommand(line) {
				break // Exit requested
			}
			continue
		}

		result, err := r.Evaluate(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("=> %s\n", result)
	}

	r.SaveHistory()
}

func (r *REPL) HandleCommand(cmd string) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case ":help", ":h":
		r.PrintHelp()
	case ":quit", ":q", ":exit":
		fmt.Println("Goodbye!")
		return true
	case ":clear", ":c":
		fmt.Print("\033[2J\033[H") // Clear screen
	case ":reset":
		r.env = nil
		r.defined = make(map[string]int64)
		fmt.Println("Environment reset")
	case ":load":
		if len(parts) < 2 {
			fmt.Println("Usage: :load <file>")
		} else {
			if err := r.LoadFile(parts[1]); err != nil {
				fmt.Printf("Error loading file: %v\n", err)
			}
		}
	case ":save":
		if len(parts) < 2 {
			fmt.Println("Usage: :save <file>")
		} else {
			if err := r.SaveSession(parts[1]); err != nil {
				fmt.Printf("Error saving session: %v\n", err)
			}
		}
	case ":history":
		r.ShowHistory()
	case ":vars":
		r.ShowVariables()
	case ":debug":
		if len(parts) < 2 {
			fmt.Printf("Debug mode: %v\n", r.debug)
		} else {
			switch parts[1] {
			case "on", "true", "1":
				r.debug = true
				fmt.Println("Debug mode enabled")
			case "off", "false", "0":
				r.debug = false
				fmt.Println("Debug mode disabled")
			default:
				fmt.Println("Usage: :debug on|off")
			}
		}
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
		fmt.Println("Type :help for available commands")
	}

	return false
}

func (r *REPL) PrintHelp() {
	fmt.Println("REPL Commands:")
	fmt.Println("  :help, :h          Show this help")
	fmt.Println("  :quit, :q, :exit   Exit REPL")
	fmt.Println("  :clear, :c         Clear screen")
	fmt.Println("  :reset             Reset environment")
	fmt.Println("  :load <file>       Load and evaluate file")
	fmt.Println("  :save <file>       Save current session")
	fmt.Println("  :history           Show command history")
	fmt.Println("  :vars              Show current variables")
	fmt.Println("  :debug on|off      Toggle debug mode")
	fmt.Println()
	fmt.Println("Enter Lett expressions to evaluate them, e.g.")
	fmt.Println("  let x = 2 in x + 3")
	fmt.Println("or define session variables with")
	fmt.Println("  x = 1 + 2")
}

// Evaluate parses and evaluates one line of input. A line of the form
// "name = expr" defines a session variable; anything else is evaluated
// as an expression against the session environment.
func (r *REPL) Evaluate(input string) (string, error) {
	if r.debug {
		fmt.Printf("Debug: Evaluating '%s'\n", input)
	}

	if name, rhs, ok := splitDefinition(input); ok {
		value, err := r.evaluateExpr(rhs)
		if err != nil {
			return "", err
		}
		r.env = r.env.Extend(name, value)
		r.defined[name] = value
		return fmt.Sprintf("%s = %d", name, value), nil
	}

	value, err := r.evaluateExpr(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", value), nil
}

func (r *REPL) evaluateExpr(input string) (int64, error) {
	if r.debug {
		tokens := lexer.New(input).Tokenize()
		fmt.Printf("Debug: Tokens: %v\n", tokens)
	}

	expr, err := grammar.ParseString(input)
	if err != nil {
		return 0, err
	}

	if r.debug {
		fmt.Printf("Debug: AST: %s\n", expr)
	}

	return eval.Evaluate(expr, r.env)
}

// splitDefinition recognizes "name = expr" lines. The right-hand side
// must not itself be empty, and the left-hand side must be a single
// identifier; "let x = 1 in x" and "(x) = 1" fall through to normal
// expression parsing.
func splitDefinition(input string) (name, rhs string, ok bool) {
	i := strings.IndexByte(input, '=')
	if i < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(input[:i])
	rhs = strings.TrimSpace(input[i+1:])
	if name == "" || rhs == "" {
		return "", "", false
	}
	tokens := lexer.New(name).Tokenize()
	if len(tokens) != 1 || tokens[0].Type != lexer.TokenIdentifier {
		return "", "", false
	}
	return name, rhs, true
}

func (r *REPL) LoadFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if _, err := r.Evaluate(line); err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
	}

	fmt.Printf("Loaded file: %s\n", filename)
	return nil
}

func (r *REPL) SaveSession(filename string) error {
	content := strings.Join(r.history, "\n")
	err := os.WriteFile(filename, []byte(content), 0644)
	if err != nil {
		return err
	}

	fmt.Printf("Session saved to: %s\n", filename)
	return nil
}

func (r *REPL) AddToHistory(line string) {
	r.history = append(r.history, line)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}

func (r *REPL) ShowHistory() {
	if len(r.history) == 0 {
		fmt.Println("No history")
		return
	}

	fmt.Println("Command history:")
	for i, cmd := range r.history {
		fmt.Printf("%3d: %s\n", i+1, cmd)
	}
}

func (r *REPL) ShowVariables() {
	if len(r.defined) == 0 {
		fmt.Println("No variables defined")
		return
	}

	names := make([]string, 0, len(r.defined))
	for name := range r.defined {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Current variables:")
	for _, name := range names {
		fmt.Printf("  %s = %d\n", name, r.defined[name])
	}
}

func (r *REPL) LoadHistory() {
	content, err := os.ReadFile(r.historyFile)
	if err != nil {
		return // History file doesn't exist yet
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			r.history = append(r.history, line)
		}
	}

	// Trim to max history size
	if len(r.history) > r.maxHistory {
		r.history = r.history[len(r.history)-r.maxHistory:]
	}
}

func (r *REPL) SaveHistory() {
	if len(r.history) == 0 {
		return
	}

	content := strings.Join(r.history, "\n")
	os.WriteFile(r.historyFile, []byte(content), 0644)
}
