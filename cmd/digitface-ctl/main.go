package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tinytelemetry/digitface/internal/model"
	"github.com/tinytelemetry/digitface/internal/socketrpc"

	"github.com/charmbracelet/lipgloss"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

const usage = `Usage: digitface-ctl [flags] <command>

Commands:
  tap         count as a user interaction (leaves idle mode)
  connect     report the companion link as up
  disconnect  report the companion link as down
  resync      repaint all four digits from the clock
  status      print the current face state

Flags:
`

func main() {
	var configPath string
	var socketPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/digitface/config.yml)")
	flag.StringVar(&socketPath, "socket", "", "override socket path of the running face")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("digitface-ctl - Watch Face Control\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if socketPath != "" {
		cfg.SocketPath = socketPath
	}

	client, err := socketrpc.Dial(cfg.SocketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot reach the watch face at %s: %v\nIs digitface running?\n", cfg.SocketPath, err)
		os.Exit(1)
	}
	defer client.Close()

	if err := runCommand(os.Stdout, client, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		client.Close()
		os.Exit(1)
	}
}

// runCommand executes one named command against the face.
func runCommand(w io.Writer, face model.FaceController, name string) error {
	switch name {
	case "tap":
		return face.Tap()
	case "connect":
		return face.SetConnected(true)
	case "disconnect":
		return face.SetConnected(false)
	case "resync":
		return face.Resync()
	case "status":
		snap, err := face.Snapshot()
		if err != nil {
			return err
		}
		printStatus(w, snap)
		return nil
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func printStatus(w io.Writer, snap model.FaceSnapshot) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	format := "24h"
	if snap.TwelveHour {
		format = "12h"
	}

	var lines []string
	lines = append(lines, "")
	lines = append(lines, "    "+cyan.Bold(true).Render(snap.Display)+"  "+dim.Render(format))
	lines = append(lines, "")

	if snap.Idle {
		lines = append(lines, fmt.Sprintf("    %s  Mode        %s", dot, dim.Render("idle")))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Mode        %s", check, "active"))
	}
	if snap.Connected {
		lines = append(lines, fmt.Sprintf("    %s  Link        %s", check, "connected"))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Link        %s", dot, dim.Render("offline")))
	}
	if !snap.LastTick.IsZero() {
		lines = append(lines, fmt.Sprintf("    %s  Last tick   %s", check, dim.Render(snap.LastTick.Format("15:04:05"))))
	}

	lines = append(lines, "")
	lines = append(lines, bold.Render("    Tiles"))
	lines = append(lines, "")
	for _, t := range snap.Tiles {
		state := "resting"
		switch {
		case t.Transitioning:
			state = "moving"
		case !t.Resting:
			state = "off-frame"
		}
		lines = append(lines, fmt.Sprintf("    %-12s %d  %s", t.Slot, t.Value, dim.Render(state)))
	}
	lines = append(lines, "")

	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
