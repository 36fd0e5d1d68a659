// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const binSoffice = "soffice"

// sofficeBackend renders documents through a headless LibreOffice run.
// LibreOffice only takes an output directory, not an output filename, so
// each conversion goes through a scratch directory and the produced file
// is moved into place.
type sofficeBackend struct {
	bin  string
	exec executor
}

func newSofficeBackend(exec executor, binOverride string) Backend {
	bin := binSoffice
	if binOverride != "" {
		bin = binOverride
	}
	return &sofficeBackend{bin: bin, exec: exec}
}

func (s *sofficeBackend) Name() string { return "soffice" }

func (s *sofficeBackend) Available() bool {
	_, err := s.exec.LookPath(s.bin)
	return err == nil
}

func (s *sofficeBackend) Convert(input, output string) error {
	scratch, err := os.MkdirTemp("", "word2pdf-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	var log bytes.Buffer
	args := []string{"--headless", "--convert-to", "pdf", "--outdir", scratch, input}
	if err := s.exec.Run(&log, s.bin, args...); err != nil {
		return fmt.Errorf("running %s on %s: %w (%s)", s.bin, input, err, condense(log.String()))
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	produced := filepath.Join(scratch, base+".pdf")
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("%s reported success but produced no PDF for %s (%s)",
			s.bin, input, condense(log.String()))
	}

	if err := moveFile(produced, output); err != nil {
		return fmt.Errorf("placing PDF at %s: %w", output, err)
	}
	return nil
}

// moveFile renames src to dst, copying when the rename crosses devices.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// condense flattens process output to a single trimmed line for error text.
func condense(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if s == "" {
		return "no output"
	}
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
