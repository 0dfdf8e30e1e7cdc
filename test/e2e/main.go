package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"testing"

	"github.com/kubev2v/forkpool/test/e2e/infra"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

type configuration struct {
	InfraMode string // "process" or "external"
	Binary    string
	APIURL    string
	HTTPPort  int
	Workers   int
	DataDir   string
}

var (
	cfg          configuration
	infraManager infra.InfraManager
)

func (c configuration) Validate() error {
	if c.InfraMode != "process" && c.InfraMode != "external" {
		return fmt.Errorf("invalid infra-mode %q: must be 'process' or 'external'", c.InfraMode)
	}
	if c.InfraMode == "process" && c.Binary == "" {
		return errors.New("forkpool binary is empty")
	}
	if c.InfraMode == "external" {
		if _, err := url.ParseRequestURI(c.APIURL); err != nil {
			return fmt.Errorf("failed to parse api url: %v", err)
		}
	}
	return nil
}

func main() {
	flag.StringVar(&cfg.InfraMode, "infra-mode", "process", "Infrastructure mode: 'process' (start the binary) or 'external' (already running)")
	flag.StringVar(&cfg.Binary, "binary", "", "Path to the forkpool binary")
	flag.StringVar(&cfg.APIURL, "api-url", "http://localhost:8000", "Forkpool base url in external mode")
	flag.IntVar(&cfg.HTTPPort, "http-port", 18000, "Port the started server listens on")
	flag.IntVar(&cfg.Workers, "workers", 4, "Workers of the started server")
	flag.StringVar(&cfg.DataDir, "data-dir", "", "Data folder of the started server (temporary when empty)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	switch cfg.InfraMode {
	case "process":
		im, err := infra.NewProcessInfraManager(cfg.Binary)
		if err != nil {
			log.Fatalf("failed to create process infra manager: %v", err)
		}
		infraManager = im
	case "external":
		infraManager = infra.NewExternalInfraManager(cfg.APIURL)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "E2E Suite") {
		os.Exit(1)
	}
}
