// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"izinoir/internal/config"
	"izinoir/repl"
)

func main() {
	cfg := config.Load()
	commonlog.Configure(cfg.Verbosity, cfg.LogPath())
	if cfg.NoColor {
		color.NoColor = true
	}

	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the izinoir REPL, %s!\n", name)
	fmt.Println("Enter a circuit function; :help lists commands.")
	repl.Start(os.Stdout, &repl.Session{Strict: cfg.Strict})
}
