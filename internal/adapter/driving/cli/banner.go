package cli

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/nocmx/netops-finops-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner() {
	banner := `
    _   __     __  ____              _______       ____
   / | / /__  / /_/ __ \____  _____ / ____(_)___  / __ \____  _____
  /  |/ / _ \/ __/ / / / __ \/ ___// /_  / / __ \/ / / / __ \/ ___/
 / /|  /  __/ /_/ /_/ / /_/ (__  )/ __/ / / / / / /_/ / /_/ (__  )
/_/ |_/\___/\__/\____/ .___/____//_/   /_/_/ /_/\____/ .___/____/
                    /_/                             /_/
`
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(cyan(banner))
	fmt.Println(blue(fmt.Sprintf("NetOps FinOps Dashboard CLI (v%s)", version.FormatVersion())))
}
