package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/diillson/superstore-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
   ____                            _
  / ___| _   _ _ __   ___ _ __ ___| |_ ___  _ __ ___
  \___ \| | | | '_ \ / _ \ '__/ __| __/ _ \| '__/ _ \
   ___) | |_| | |_) |  __/ |  \__ \ || (_) | | |  __/
  |____/ \__,_| .__/ \___|_|  |___/\__\___/|_|  \___|
              |_|                    D A S H B O A R D
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("Superstore Dashboard CLI (v%s)", formattedVersion)))
}
