// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package office

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const sofficeBin = "soffice"

// libreOffice launches LibreOffice in headless mode. Each Launch gets a
// private user profile so a desktop LibreOffice session is never touched.
type libreOffice struct {
	path string
	exec executor
}

func newLibreOffice(path string, exec executor) *libreOffice {
	return &libreOffice{path: path, exec: exec}
}

func (l *libreOffice) bin() string {
	if l.path != "" {
		return l.path
	}
	return sofficeBin
}

func (l *libreOffice) Name() string { return "LibreOffice" }

func (l *libreOffice) Available() bool {
	_, err := l.exec.LookPath(l.bin())
	return err == nil
}

func (l *libreOffice) Launch(ctx context.Context) (Application, error) {
	bin, err := l.exec.LookPath(l.bin())
	if err != nil {
		return nil, fmt.Errorf("locating %s: %w", l.bin(), err)
	}
	profile, err := os.MkdirTemp("", "word2pdf-profile-*")
	if err != nil {
		return nil, fmt.Errorf("creating LibreOffice profile: %w", err)
	}
	return &loApp{ctx: ctx, bin: bin, profile: profile, exec: l.exec}, nil
}

type loApp struct {
	ctx     context.Context
	bin     string
	profile string
	exec    executor
	quit    bool
}

func (a *loApp) Open(path string) (Document, error) {
	if a.quit {
		return nil, errors.New("application already quit")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: is a directory", path)
	}
	return &loDoc{app: a, src: path}, nil
}

func (a *loApp) Quit() error {
	if a.quit {
		return nil
	}
	a.quit = true
	if err := os.RemoveAll(a.profile); err != nil {
		return fmt.Errorf("removing LibreOffice profile %s: %w", a.profile, err)
	}
	return nil
}

// profileURL renders the profile directory as the file URL soffice expects.
func (a *loApp) profileURL() string {
	p := filepath.ToSlash(a.profile)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

type loDoc struct {
	app    *loApp
	src    string
	closed bool
}

// ExportPDF converts into a scratch directory and moves the result to dst.
// soffice always names its output after the source, so converting straight
// into the destination directory could clobber an unrelated file.
func (d *loDoc) ExportPDF(dst string) error {
	if d.closed {
		return errors.New("document already closed")
	}
	outDir, err := os.MkdirTemp("", "word2pdf-out-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := []string{
		"--headless", "--norestore", "--nolockcheck",
		"-env:UserInstallation=" + d.app.profileURL(),
		"--convert-to", "pdf",
		"--outdir", outDir,
		d.src,
	}
	if err := d.app.exec.Run(d.app.ctx, d.app.bin, args...); err != nil {
		return fmt.Errorf("running %s: %w", filepath.Base(d.app.bin), err)
	}

	base := strings.TrimSuffix(filepath.Base(d.src), filepath.Ext(d.src))
	produced := filepath.Join(outDir, base+".pdf")
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("LibreOffice produced no PDF for %s", filepath.Base(d.src))
	}
	return moveFile(produced, dst)
}

func (d *loDoc) Close() error {
	d.closed = true
	return nil
}

// moveFile renames src to dst, copying when they sit on different volumes.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return out.Close()
}
