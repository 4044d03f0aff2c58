package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apppkg "github.com/bresilla/lis/internal/app"
	statepkg "github.com/bresilla/lis/internal/state"
)

func printHelp() {
	fmt.Print(`lis - interactive tree file browser

USAGE:
    lis [OPTIONS] [PATH]

    PATH may be a directory to browse, or a file: the tree opens at the
    file's parent with the cursor on the file. Activating a file prints
    its path to stdout and exits 0.

OPTIONS:
    -h, --help                   Show this help message and exit
        --cwd DIR                Root directory for the tree (PATH then only highlights)
    -a, --all                    Show hidden files
    -A, --alt-screen             Use the alternate screen buffer
    -c, --compact                Hide header and help
    -g, --generic-icons          Use one generic icon for all files
    -G, --git                    Show the git status column
    -s, --size                   Show the file size column
    -d, --depth N                Max indent depth (-1 = unlimited)
        --background N           Terminal background 0-255 (needs -A)
        --selection-background N Cursor line background 0-255 (needs -A)
`)
}

type options struct {
	path         string
	cwd          string
	showHidden   bool
	altScreen    bool
	compact      bool
	genericIcons bool
	showGit      bool
	showSize     bool
	maxDepth     int
	bgColor      int
	selBGColor   int
}

func parseArgs(args []string) (options, error) {
	opts := options{maxDepth: -1, bgColor: -1, selBGColor: -1}

	intValue := func(name, raw string, dest *int) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", name, raw)
		}
		*dest = n
		return nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// Valued flags accept both "--flag value" and "--flag=value".
		name, inline, hasInline := strings.Cut(arg, "=")
		value := func() (string, error) {
			if hasInline {
				return inline, nil
			}
			i++
			if i >= len(args) {
				return "", fmt.Errorf("missing value for %s", name)
			}
			return args[i], nil
		}

		switch name {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "--cwd":
			v, err := value()
			if err != nil {
				return opts, err
			}
			opts.cwd = v
		case "-a", "--all":
			opts.showHidden = true
		case "-A", "--alt-screen":
			opts.altScreen = true
		case "-c", "--compact":
			opts.compact = true
		case "-g", "--generic-icons":
			opts.genericIcons = true
		case "-G", "--git":
			opts.showGit = true
		case "-s", "--size":
			opts.showSize = true
		case "-d", "--depth":
			v, err := value()
			if err != nil {
				return opts, err
			}
			if err := intValue(name, v, &opts.maxDepth); err != nil {
				return opts, err
			}
		case "--background":
			v, err := value()
			if err != nil {
				return opts, err
			}
			if err := intValue(name, v, &opts.bgColor); err != nil {
				return opts, err
			}
		case "--selection-background":
			v, err := value()
			if err != nil {
				return opts, err
			}
			if err := intValue(name, v, &opts.selBGColor); err != nil {
				return opts, err
			}
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown option: %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("unexpected argument: %s", arg)
			}
			opts.path = arg
		}
	}
	return opts, nil
}

// resolveRoot turns the CLI inputs into a tree root and optional highlight
// target. Invalid paths exit with code 2.
func resolveRoot(opts options) (root, highlight string, err error) {
	if opts.cwd != "" {
		root, err = filepath.Abs(opts.cwd)
		if err != nil {
			return "", "", err
		}
		info, statErr := os.Stat(root)
		if statErr != nil {
			return "", "", fmt.Errorf("cwd path does not exist: %s", root)
		}
		if !info.IsDir() {
			return "", "", fmt.Errorf("cwd must be a directory: %s", root)
		}
		if opts.path != "" {
			highlight, err = filepath.Abs(opts.path)
			if err != nil {
				return "", "", err
			}
			if _, statErr := os.Stat(highlight); statErr != nil {
				return "", "", fmt.Errorf("file path does not exist: %s", highlight)
			}
		}
		return root, highlight, nil
	}

	input := opts.path
	if input == "" {
		input, err = os.Getwd()
		if err != nil {
			return "", "", err
		}
	}
	input, err = filepath.Abs(input)
	if err != nil {
		return "", "", err
	}
	info, statErr := os.Stat(input)
	if statErr != nil {
		return "", "", fmt.Errorf("path does not exist: %s", input)
	}
	if info.IsDir() {
		return input, "", nil
	}
	// A file argument opens the parent directory with the file highlighted.
	return filepath.Dir(input), input, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	root, highlight, err := resolveRoot(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	state := statepkg.NewTreeState(root)
	state.Options.ShowHidden = opts.showHidden
	state.Options.AltScreen = opts.altScreen
	state.Options.ShowHeader = !opts.compact
	state.Options.GenericIcons = opts.genericIcons
	state.Options.ShowGit = opts.showGit
	state.Options.ShowSize = opts.showSize
	state.Options.MaxDepth = opts.maxDepth
	state.Options.BGColor = opts.bgColor
	state.Options.SelBGColor = opts.selBGColor
	state.HighlightTarget = highlight

	app, err := apppkg.NewApplication(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	selected, err := app.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if selected != "" {
		fmt.Println(selected)
	}
}
