// Command babel encodes files into library page coordinates and decodes
// them back, byte for byte. The library itself is never stored: every page
// is regenerated algebraically from its address.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/BabelVault/core/vault"
	"github.com/FocuswithJustin/BabelVault/internal/archive"
	"github.com/FocuswithJustin/BabelVault/internal/catalog"
	"github.com/FocuswithJustin/BabelVault/internal/logging"
	"github.com/FocuswithJustin/BabelVault/internal/validation"
)

const version = "0.2.0"

// CLI defines the command-line interface for babel.
var CLI struct {
	// Global flags
	LogLevel  string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Encode  EncodeCmd    `cmd:"" help:"Encode a file into a coordinate container"`
	Decode  DecodeCmd    `cmd:"" help:"Decode a coordinate container back into the original file"`
	Inspect InspectCmd   `cmd:"" help:"Show container metadata without decoding"`
	Verify  VerifyCmd    `cmd:"" help:"Decode a container and check it round-trips"`
	Catalog CatalogGroup `cmd:"" help:"Encode ledger operations"`
	Version VersionCmd   `cmd:"" help:"Print version information"`
}

// CatalogGroup contains encode ledger operations.
type CatalogGroup struct {
	List CatalogListCmd `cmd:"" help:"List recorded encodes"`
}

// EncodeCmd encodes a file into a coordinate container.
type EncodeCmd struct {
	Path    string `arg:"" help:"Path to file to encode" type:"existingfile"`
	Out     string `help:"Output container path" type:"path"`
	XZ      bool   `name:"xz" help:"Compress the container with XZ"`
	Catalog string `help:"Record the encode in this catalog database" type:"path"`
}

func (c *EncodeCmd) Run() error {
	outputPath := c.Out
	if outputPath == "" {
		outputPath = validation.OutputPath(c.Path, "babel")
	}
	if err := validation.ValidatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	extension := strings.TrimPrefix(filepath.Ext(c.Path), ".")

	start := time.Now()
	pipeline := vault.New()
	rec, err := pipeline.Encode(data, extension)
	if err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}

	opts := &archive.WriteOptions{Compression: archive.CompressionNone}
	if c.XZ {
		opts.Compression = archive.CompressionXZ
	}
	if err := archive.Write(outputPath, rec, opts); err != nil {
		return err
	}
	logging.EncodeCompleted(filepath.Base(c.Path), rec.Size, rec.Pages(), time.Since(start))

	fmt.Printf("Encoded: %s\n", c.Path)
	fmt.Printf("  Size: %d bytes\n", rec.Size)
	fmt.Printf("  Pages: %d\n", rec.Pages())
	fmt.Printf("  Container: %s\n", outputPath)

	if c.Catalog != "" {
		cat, err := catalog.Open(c.Catalog)
		if err != nil {
			return err
		}
		defer cat.Close()

		entry := &catalog.Entry{
			Name:          filepath.Base(c.Path),
			Extension:     rec.Extension,
			SizeBytes:     rec.Size,
			Pages:         rec.Pages(),
			BLAKE3:        catalog.Hash(data),
			ContainerPath: outputPath,
		}
		if err := cat.Record(entry); err != nil {
			return err
		}
		fmt.Printf("  Cataloged: %s\n", entry.ID)
	}

	return nil
}

// DecodeCmd decodes a coordinate container back into the original file.
type DecodeCmd struct {
	Path    string `arg:"" help:"Path to container" type:"existingfile"`
	Out     string `help:"Output file path" type:"path"`
	Catalog string `help:"Verify the decode against this catalog database" type:"path"`
}

func (c *DecodeCmd) Run() error {
	rec, err := archive.Read(c.Path)
	if err != nil {
		return err
	}

	start := time.Now()
	pipeline := vault.New()
	data, extension, err := pipeline.Decode(rec)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	outputPath := c.Out
	if outputPath == "" {
		outputPath = validation.OutputPath(c.Path, extension)
	}
	if err := validation.ValidatePath(outputPath); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logging.DecodeCompleted(filepath.Base(outputPath), rec.Size, rec.Pages(), time.Since(start))

	fmt.Printf("Decoded: %s\n", c.Path)
	fmt.Printf("  Size: %d bytes\n", rec.Size)
	fmt.Printf("  Output: %s\n", outputPath)

	if c.Catalog != "" {
		cat, err := catalog.Open(c.Catalog)
		if err != nil {
			return err
		}
		defer cat.Close()

		entry, err := cat.FindByHash(catalog.Hash(data))
		if err != nil {
			if err == catalog.ErrNotFound {
				return fmt.Errorf("decoded bytes do not match any cataloged encode")
			}
			return err
		}
		fmt.Printf("  BLAKE3: %s (verified against %s)\n", entry.BLAKE3, entry.ID)
	}

	return nil
}

// InspectCmd shows container metadata without decoding.
type InspectCmd struct {
	Path string `arg:"" help:"Path to container" type:"existingfile"`
}

func (c *InspectCmd) Run() error {
	compression, err := archive.DetectCompression(c.Path)
	if err != nil {
		return err
	}
	rec, err := archive.Read(c.Path)
	if err != nil {
		return err
	}

	extension := rec.Extension
	if extension == "" {
		extension = "(none)"
	}

	fmt.Printf("Container: %s\n", c.Path)
	fmt.Printf("  Compression: %s\n", compression)
	fmt.Printf("  Extension: %s\n", extension)
	fmt.Printf("  Size: %d bytes\n", rec.Size)
	fmt.Printf("  Pages: %d\n", rec.Pages())
	if rec.Pages() > 0 {
		fmt.Printf("  First address: %s\n", truncateAddress(rec.Addresses[0].String(), 64))
	}
	return nil
}

// VerifyCmd decodes a container and checks it round-trips.
type VerifyCmd struct {
	Path string `arg:"" help:"Path to container" type:"existingfile"`
}

func (c *VerifyCmd) Run() error {
	rec, err := archive.Read(c.Path)
	if err != nil {
		return err
	}

	pipeline := vault.New()
	data, extension, err := pipeline.Decode(rec)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if int64(len(data)) != rec.Size {
		return fmt.Errorf("decoded %d bytes, container declares %d", len(data), rec.Size)
	}

	// Re-encode and compare the address sequences: the transform is a
	// bijection, so any divergence means corruption.
	reencoded, err := pipeline.Encode(data, extension)
	if err != nil {
		return fmt.Errorf("re-encode failed: %w", err)
	}
	if len(reencoded.Addresses) != len(rec.Addresses) {
		return fmt.Errorf("re-encode produced %d pages, container has %d", len(reencoded.Addresses), len(rec.Addresses))
	}
	for i := range rec.Addresses {
		if !reencoded.Addresses[i].Equal(rec.Addresses[i]) {
			return fmt.Errorf("address %d does not round-trip", i)
		}
	}

	want, err := rec.MarshalText()
	if err != nil {
		return err
	}
	got, err := reencoded.MarshalText()
	if err != nil {
		return err
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("container text does not round-trip")
	}

	fmt.Printf("Container: %s\n", c.Path)
	fmt.Printf("  Pages: %d\n", rec.Pages())
	fmt.Printf("  Size: %d bytes\n", rec.Size)
	fmt.Println("Verification passed!")
	return nil
}

// CatalogListCmd lists recorded encodes.
type CatalogListCmd struct {
	DB string `help:"Catalog database path" type:"path" default:"babel-catalog.db"`
}

func (c *CatalogListCmd) Run() error {
	cat, err := catalog.Open(c.DB)
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No encodes recorded in %s\n", c.DB)
		return nil
	}

	fmt.Printf("Encodes in %s:\n\n", c.DB)
	for _, e := range entries {
		fmt.Printf("  %s\n", e.ID)
		fmt.Printf("    Name: %s\n", e.Name)
		fmt.Printf("    Size: %d bytes (%d pages)\n", e.SizeBytes, e.Pages)
		fmt.Printf("    BLAKE3: %s\n", e.BLAKE3[:16]+"...")
		fmt.Printf("    Container: %s\n", e.ContainerPath)
		fmt.Printf("    Created: %s\n", e.CreatedAt.Format(time.RFC3339))
		fmt.Println()
	}
	fmt.Printf("Total: %d encode(s)\n", len(entries))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("babel version %s\n", version)
	fmt.Printf("  SQLite driver: %s\n", catalog.DriverType())
	return nil
}

// truncateAddress shortens long address text for display.
func truncateAddress(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("babel"),
		kong.Description("Encode files as library page coordinates and decode them back."),
		kong.UsageOnError(),
	)
	logging.InitLogger(logging.ParseLevel(CLI.LogLevel), logging.ParseFormat(CLI.LogFormat))
	ctx.FatalIfErrorf(ctx.Run())
}
