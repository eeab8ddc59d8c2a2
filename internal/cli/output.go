package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mgpai22/vttgen/internal/subtitle"
)

// resolveFormat picks the output format from the --format flag, falling back
// to the output file extension and then to WebVTT.
func resolveFormat(flag, outputPath string) (subtitle.Format, error) {
	if flag != "" {
		return subtitle.ParseFormat(flag)
	}
	if outputPath != "" && outputPath != "-" {
		return subtitle.GetFormatFromExtension(outputPath), nil
	}
	return subtitle.DefaultFormat, nil
}

// emit writes doc to outputPath, or to out when no path is given.
func emit(doc *subtitle.Document, format subtitle.Format, outputPath string, out io.Writer) error {
	if outputPath == "" || outputPath == "-" {
		writer, err := subtitle.NewWriter(format)
		if err != nil {
			return err
		}
		return writer.WriteTo(doc, out)
	}

	logger.Infow("Writing output file",
		"output", outputPath,
		"format", format,
	)
	if err := subtitle.WriteFile(doc, outputPath, format); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	printSummary(out, absOutput, format, len(doc.Cues()))
	return nil
}

func printSummary(out io.Writer, path string, format subtitle.Format, cues int) {
	label := color.New(color.FgYellow)
	value := color.New(color.FgGreen)

	label.Fprint(out, "output: ")
	value.Fprintf(out, "%s\n", path)
	label.Fprint(out, "format: ")
	value.Fprintf(out, "%s\n", format)
	label.Fprint(out, "cues: ")
	value.Fprintf(out, "%d\n", cues)
}
