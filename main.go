package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/urbanpiper/squadview/config"
	versionpkg "github.com/urbanpiper/squadview/internal/version"
	"github.com/urbanpiper/squadview/tui"
)

// Global flag for debug logging (set after config is loaded)
var debugLoggingEnabled bool = false

// debugLog writes a message to the debug log file if logging is enabled
func debugLog(msg string) {
	if !debugLoggingEnabled {
		return
	}
	if f, err := os.OpenFile("/tmp/squadview-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		fmt.Fprintf(f, "%s\n", msg)
		f.Close()
	}
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", r)
			os.Exit(1)
		}
	}()

	fileFlag := flag.String("file", "", "Path to the tracker CSV export (default: last used or "+config.DefaultSourcePath+")")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show help")

	flag.Parse()

	if *versionFlag {
		fmt.Printf("squadview version %s\n", versionpkg.CliVersion)
		os.Exit(0)
	}

	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	// Initialize config manager (ignore errors, will use defaults)
	configManager, _ := config.NewManager()
	if configManager != nil {
		debugLoggingEnabled = configManager.GetDebugLoggingEnabled()
	}

	sourcePath := *fileFlag
	if sourcePath == "" && configManager != nil {
		sourcePath = configManager.GetSourcePath()
	}
	if sourcePath == "" {
		sourcePath = config.DefaultSourcePath
	}
	debugLog(fmt.Sprintf("starting with source %s", sourcePath))

	// Check for updates (non-blocking, rate-limited to once every 10 minutes)
	go versionpkg.CheckLatestVersionOfCli(false)

	model := tui.NewModel(configManager, sourcePath)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Printf(`squadview - Sprint analytics dashboard for tracker CSV exports v%s

Loads one CSV export of project-tracking issues and renders velocity, cycle
time, workload and task-type charts in an interactive terminal dashboard.

USAGE:
    squadview [OPTIONS]

OPTIONS:
    -file <path>    Path to the CSV export (default: last used path,
                    falling back to %s)
    -version        Print version and exit
    -help           Show this help message

KEYBINDINGS:
    ↑/k ↓/j         Navigate charts
    g/G             Jump to first/last chart
    /               Fuzzy-search chart titles (Esc clears)
    y               Copy selected chart as text
    r               Reload the export and recompute everything
    q/Ctrl+C        Quit

CONFIGURATION:
    ~/.config/squadview/config.json stores the last used source path and can
    override the analysis tables (sprint order, sprint renames, capacity per
    person, service list).

EXPECTED COLUMNS:
    ID, Title, Assignee, Labels, Status, Priority, Estimate, Cycle Name,
    Created, Started, Completed, Updated. Missing columns simply leave the
    matching fields absent.
`, versionpkg.CliVersion, config.DefaultSourcePath)
}
