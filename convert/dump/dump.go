// Package dump writes parsed script tree as plain text.
package dump

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"subc/config"
	"subc/content"
)

// Generate writes readable tree of c to outputPath.
func Generate(ctx context.Context, c *content.Content, outputPath string, _ *config.DocumentConfig, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log.Info("Generating dump", zap.String("output", outputPath), zap.Int("lines", len(c.Divs)))

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(c.String()), 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	return nil
}
