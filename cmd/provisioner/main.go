package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/systemstart/provisioner/pkg/api"
	"github.com/systemstart/provisioner/pkg/logging"
	"github.com/systemstart/provisioner/pkg/processing"
)

var version = "dev"

const (
	_ = iota
	exitDotenvError
	exitLoadPlanFailed
	exitLoadVarsFailed
	exitPlanFailed
)

var (
	planFile    string
	varsFile    string
	loggingType string
	logLevel    string
	showVersion bool
)

func init() {
	flag.StringVar(
		&planFile,
		"plan",
		"provision.yaml",
		"provisioning plan to run")
	flag.StringVar(
		&varsFile,
		"vars-file",
		"",
		"global vars YAML file")
	flag.StringVar(
		&loggingType,
		"logging-type",
		"tint",
		"logging type: json, text or tint")
	flag.StringVar(
		&logLevel,
		"log-level",
		"info",
		"logging level: debug, info, warn, error")
	flag.BoolVar(
		&showVersion,
		"version",
		false,
		"print version and exit")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	_ = logging.Initialize(loggingType, logLevel)

	includeEnv()

	globalVars := loadGlobalVars()
	plan := loadPlan()

	if err := processing.RunPlan(plan, globalVars); err != nil {
		slog.Error("provisioning failed", "plan", plan.FilePath, "error", err)
		os.Exit(exitPlanFailed)
	}

	slog.Info("done")
}

func loadPlan() *api.Plan {
	plan, err := api.LoadPlan(planFile)
	if err != nil {
		slog.Error("failed to load plan", "filename", planFile, "error", err)
		os.Exit(exitLoadPlanFailed)
	}
	return plan
}

func loadGlobalVars() map[string]any {
	if varsFile == "" {
		return nil
	}

	vars, err := processing.LoadVarsFile(varsFile)
	if err != nil {
		slog.Error("failed to load vars file", "filename", varsFile, "error", err)
		os.Exit(exitLoadVarsFailed)
	}
	return vars
}

func includeEnv() {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load .env", "error", err)
			os.Exit(exitDotenvError)
		}
		slog.Debug("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}
