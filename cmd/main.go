// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/sensorhub/internal/config"
	"github.com/itsatony/sensorhub/internal/server"
)

// @title SensorHub API
// @version 1.0
// @description Thin HTTP API over the sensor_readings table.
// @BasePath /
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting SensorHub Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   _____                            __  __      __  ",
		"  / ___/___  ____  _________  _____/ / / /_  __/ /_ ",
		"  \\__ \\/ _ \\/ __ \\/ ___/ __ \\/ ___/ /_/ / / / / __ \\",
		" ___/ /  __/ / / (__  ) /_/ / /  / __  / /_/ / /_/ /",
		"/____/\\___/_/ /_/____/\\____/_/  /_/ /_/\\__,_/_.___/ ",
		"..................................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
