package cmd

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/hargabyte/cvx/internal/cache"
	"github.com/hargabyte/cvx/internal/catalog"
	"github.com/hargabyte/cvx/internal/config"
	"github.com/hargabyte/cvx/internal/extract"
	"github.com/hargabyte/cvx/internal/obo"
)

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFromPath(configPath)
	}
	return config.Load(".")
}

// resolveCVPath applies the --cv override to the configured path.
func resolveCVPath(cfg *config.Config) string {
	if cvPath != "" {
		return cvPath
	}
	return cfg.CV.Path
}

// loadDocument reads and parses the CV document, consulting the
// parsed-document cache when a .cvx directory exists. Cache problems
// degrade to a reparse; only the CV file itself is load-fatal.
func loadDocument(cfg *config.Config) (*obo.Document, error) {
	path := resolveCVPath(cfg)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cv file: %w", err)
	}

	if noCache || cfg.Cache.Disabled {
		return obo.ParseData(data)
	}

	cvxDir, err := config.FindConfigDir(".")
	if err != nil {
		// No .cvx directory; don't create one just to hold a cache.
		return obo.ParseData(data)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	c, err := cache.Open(cvxDir)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "cvx: cache unavailable: %v\n", err)
		}
		return obo.ParseData(data)
	}
	defer c.Close()

	doc, hit, err := c.Load(hash)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "cvx: cache read failed: %v\n", err)
		}
	} else if hit {
		return doc, nil
	}

	doc, err = obo.ParseData(data)
	if err != nil {
		return nil, err
	}
	if err := c.Store(hash, doc); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "cvx: cache write failed: %v\n", err)
	}
	return doc, nil
}

// runExtraction loads the document, runs the job, and prints the enum
// block. Output reaches stdout only after the whole block rendered.
func runExtraction(job catalog.Job) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}
	text, err := extract.Run(doc, job)
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}
