package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/rhofkens/AI-presenter/internal/uploads"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Run the upload rules against local presentations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rejected := 0
			for _, path := range args {
				if !checkFile(cmd, path) {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d file(s) rejected", rejected, len(args))
			}
			return nil
		},
	}
}

func checkFile(cmd *cobra.Command, path string) bool {
	out := cmd.OutOrStdout()
	name := filepath.Base(path)

	candidate, err := candidateFromFile(path)
	if err != nil {
		fmt.Fprintf(out, "REJECTED  %s: %v\n", name, err)
		return false
	}

	var accepted bool
	gate := uploads.Gate{
		OnAccepted: func(c uploads.Candidate) {
			accepted = true
			fmt.Fprintf(out, "ACCEPTED  %s (%s, %d bytes)\n", c.Name, c.MimeType, c.Size)
		},
		OnError: func(message string) {
			fmt.Fprintf(out, "REJECTED  %s: %s\n", name, message)
		},
	}
	gate.Drop([]uploads.Candidate{candidate}, false)
	return accepted
}

// candidateFromFile describes a local file the way a browser would present
// it: content type from the file itself, size from the file system.
func candidateFromFile(path string) (uploads.Candidate, error) {
	info, err := os.Stat(path)
	if err != nil {
		return uploads.Candidate{}, err
	}
	if info.IsDir() {
		return uploads.Candidate{}, fmt.Errorf("is a directory")
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return uploads.Candidate{}, fmt.Errorf("failed to detect type: %w", err)
	}

	mime := mtype.String()
	for _, accepted := range uploads.AcceptedMimeTypes() {
		if mtype.Is(accepted) {
			mime = accepted
			break
		}
	}

	return uploads.Candidate{Name: info.Name(), MimeType: mime, Size: info.Size()}, nil
}
