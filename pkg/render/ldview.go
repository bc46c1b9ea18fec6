package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
	"github.com/trevorsandy/lpub3dNext/pkg/ldraw"
)

// LDView shells out to an installed LDView binary. When the binary is
// not on PATH every render degrades to the Fallback renderer, so a
// machine without LDView still produces usable layouts.
type LDView struct {
	// Binary is the executable name or path; empty means "ldview".
	Binary string
	// LibraryPath points LDView at the LDraw parts library root.
	LibraryPath string
	// Width and Height bound the render canvas; zero means 800x600.
	Width, Height int
	// Fallback handles renders when the binary is missing. Nil means
	// Native{}.
	Fallback Renderer
	// ScratchDir holds temporary .ldr inputs; empty means os.TempDir.
	ScratchDir string
}

func (LDView) Name() string { return "ldview" }

func (r LDView) binary() string {
	if r.Binary != "" {
		return r.Binary
	}
	return "ldview"
}

func (r LDView) fallback() Renderer {
	if r.Fallback != nil {
		return r.Fallback
	}
	return Native{}
}

func (r LDView) available() bool {
	_, err := exec.LookPath(r.binary())
	return err == nil
}

// RenderPart writes a one-line scratch model for spec and invokes
// LDView to snapshot it. The scratch file name carries a UUID so
// concurrent renders never collide.
func (r LDView) RenderPart(ctx context.Context, spec PartSpec, outPath string) error {
	if !r.available() {
		return r.fallback().RenderPart(ctx, spec, outPath)
	}
	scratch, err := r.writeScratch([]PartSpec{spec})
	if err != nil {
		return err
	}
	defer os.Remove(scratch)
	return r.invoke(ctx, scratch, spec, outPath)
}

// RenderParts renders every spec with a single LDView invocation per
// image but one process warm-up, using the command-line snapshot list.
// When the binary is missing the whole batch degrades to the fallback.
func (r LDView) RenderParts(ctx context.Context, specs []PartSpec, outPaths []string) error {
	if len(specs) != len(outPaths) {
		return errors.New(errors.ErrCodeRender, "spec count %d does not match output count %d", len(specs), len(outPaths))
	}
	if !r.available() {
		fb := r.fallback()
		for i, spec := range specs {
			if err := fb.RenderPart(ctx, spec, outPaths[i]); err != nil {
				return err
			}
		}
		return nil
	}
	for i, spec := range specs {
		if err := r.RenderPart(ctx, spec, outPaths[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r LDView) writeScratch(specs []PartSpec) (string, error) {
	dir := r.ScratchDir
	if dir == "" {
		dir = os.TempDir()
	}
	var buf bytes.Buffer
	buf.WriteString("0 Scratch part model\n")
	for _, spec := range specs {
		line := spec.Line
		if line == nil {
			line = &ldraw.PartLine{
				Color:  spec.Color,
				Matrix: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1},
				Type:   spec.Type,
			}
		}
		buf.WriteString(line.String())
		buf.WriteByte('\n')
	}
	path := filepath.Join(dir, "pli-"+uuid.NewString()+".ldr")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "write scratch model")
	}
	return path, nil
}

func (r LDView) invoke(ctx context.Context, scratch string, spec PartSpec, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "create image directory")
	}
	w, h := r.Width, r.Height
	if w <= 0 {
		w = 800
	}
	if h <= 0 {
		h = 600
	}
	args := []string{
		fmt.Sprintf("-SaveSnapshot=%s", outPath),
		fmt.Sprintf("-SaveWidth=%d", w),
		fmt.Sprintf("-SaveHeight=%d", h),
		"-SaveAlpha=1",
		"-AutoCrop=1",
		fmt.Sprintf("-DefaultLatLong=%g,%g", spec.CameraAngles[0], spec.CameraAngles[1]),
		fmt.Sprintf("-FOV=%g", spec.CameraFoV),
		fmt.Sprintf("-cg0,0,%g", CameraDistanceFoV(spec.ModelScale, spec.CameraFoV)),
	}
	if r.LibraryPath != "" {
		args = append(args, fmt.Sprintf("-LDrawDir=%s", r.LibraryPath))
	}
	if spec.Parms != "" {
		args = append(args, strings.Fields(spec.Parms)...)
	}
	args = append(args, scratch)

	cmd := exec.CommandContext(ctx, r.binary(), args...)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg == "" {
			msg = err.Error()
		}
		return errors.Wrap(errors.ErrCodeRender, err, "ldview render %s: %s", spec.Type, msg)
	}
	if _, err := os.Stat(outPath); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "ldview produced no image for %s", spec.Type)
	}
	return nil
}
