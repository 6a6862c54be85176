package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pstuifzand/tui-datagrid/internal/app"
	"github.com/pstuifzand/tui-datagrid/internal/socket"
)

func main() {
	logFile, err := os.Create("tdg.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (logs key events and the selection)")
	addRow := flag.String("add-row", "", "Append a row to a running tdg instance; cells are separated by tabs or commas")
	textRow := flag.Bool("text", false, "With -add-row, add the row as a text banner")
	dump := flag.Bool("dump", false, "Print the grid of a running tdg instance as tab-separated values")
	flag.Parse()

	if *addRow != "" {
		if err := sendAddRow(*addRow, *textRow); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Row added")
		return
	}
	if *dump {
		if err := sendDump(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var filePath string
	if args := flag.Args(); len(args) > 0 {
		filePath = args[0]
	}

	application, err := app.NewApp(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// splitCells splits on tabs when there are any, otherwise on commas.
func splitCells(s string) []string {
	sep := ","
	if strings.Contains(s, "\t") {
		sep = "\t"
	}
	cells := strings.Split(s, sep)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

func connect() (*socket.Client, error) {
	socketPath, pid, err := socket.FindRunningInstance()
	if err != nil {
		return nil, fmt.Errorf("no running tdg instance found: %w", err)
	}
	log.Printf("Found running instance at PID %d: %s", pid, socketPath)

	client, err := socket.NewClient(socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return client, nil
}

// sendAddRow sends an add_row command to a running instance
func sendAddRow(line string, text bool) error {
	if strings.TrimSpace(line) == "" {
		return fmt.Errorf("row cannot be empty")
	}
	client, err := connect()
	if err != nil {
		return err
	}
	response, err := client.SendAddRow(splitCells(line), text)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}
	log.Printf("Successfully sent add_row command: %q", line)
	return nil
}

func sendDump() error {
	client, err := connect()
	if err != nil {
		return err
	}
	response, err := client.SendDump()
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	if !response.Success {
		return fmt.Errorf("server error: %s", response.Message)
	}
	for _, row := range response.Data {
		fmt.Println(strings.Join(row, "\t"))
	}
	return nil
}
