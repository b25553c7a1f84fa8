package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/ign/internal/adapters/aliastable"
	"github.com/AntonioJCosta/ign/internal/adapters/platform"
	"github.com/AntonioJCosta/ign/internal/core/services/templatelookup"
	"github.com/AntonioJCosta/ign/internal/handlers/cli"
	"github.com/AntonioJCosta/ign/internal/handlers/ui"
	"github.com/AntonioJCosta/ign/internal/repositories/ignorefile"
	"github.com/AntonioJCosta/ign/internal/repositories/templaterepo"
)

// Version is set at build time
var Version = "dev"

func main() {
	ui.ConfigureColor(os.Stderr)

	aliases, err := aliastable.LoadTable(aliastable.NewYAMLProvider())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading filetype aliases: %v\n", err)
		os.Exit(1)
	}

	osPlatform := platform.NewOSPlatform()
	repoLocator := templaterepo.NewRepoLocator(osPlatform)
	templateFinder := templaterepo.NewFinder(templaterepo.DefaultSkipPatterns...)
	templateSink := ignorefile.NewSink(ignorefile.LocalFileName)

	lookupSvc := templatelookup.NewService(aliases, repoLocator, templateFinder, templateSink)
	rootCmd := cli.NewRootCommand(Version, lookupSvc)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
