package seamcarve

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/esimov/seamcarve/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Supported source extensions. Webp sources are written back as png.
var validExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".webp", binExt}

// Ops describes where the images are read from and written to.
type Ops struct {
	Src, Dst, PipeName string
	Workers            int
	// Spinner, if set, is shown while an image is being carved.
	Spinner *utils.Spinner
}

// result holds the relevant information about the resizing process and the generated image.
type result struct {
	path string
	err  error
}

// Execute runs the resize over a single file, a pipe, a remote image
// or every supported image of a directory tree.
//
// Directories are processed concurrently by at most Workers goroutines.
// The first error encountered is returned once the walk is finished;
// a canceled context stops the processing of further files.
func (p *Processor) Execute(ctx context.Context, op *Ops) error {
	l := p.logger()
	src := op.Src

	// Remote sources are downloaded first and processed as a regular file.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(ctx, src)
		if err != nil {
			return errors.Wrap(err, "failed to load the source image")
		}
		defer os.Remove(f.Name())
		if err := f.Close(); err != nil {
			return err
		}
		src = f.Name()
	}

	var (
		fs  os.FileInfo
		err error
	)
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load the source image")
	}

	now := time.Now()
	switch mode := fs.Mode(); {
	case mode.IsDir():
		if err := os.MkdirAll(op.Dst, 0755); err != nil {
			return errors.Wrap(err, "unable to create the destination directory")
		}
		// Every file would overwrite the same energy map.
		proc := *p
		proc.EnergyFile = ""
		// A single progress indicator cannot track concurrent workers.
		dirOp := *op
		dirOp.Spinner = nil

		workers := op.Workers
		if workers <= 0 || workers > maxWorkers {
			workers = runtime.NumCPU()
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		ch := make(chan result)
		paths, errc := walkDir(ctx, src, validExtensions)

		var wg sync.WaitGroup
		wg.Add(workers)
		for i := 0; i < workers; i++ {
			go func() {
				defer wg.Done()
				dirOp.consumer(ctx, &proc, src, ch, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		var firstErr error
		for res := range ch {
			if res.err != nil {
				l.Error("resizing image failed", "path", res.path, "err", res.err)
				if firstErr == nil {
					firstErr = res.err
				}
				continue
			}
			l.Info("image saved", "path", res.path)
		}
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
		}
		if firstErr != nil {
			return firstErr
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		if op.Dst != op.PipeName {
			ext := strings.ToLower(filepath.Ext(op.Dst))
			if ext == ".webp" || !isValidExtension(ext, validExtensions) {
				return errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
			}
		}
		if err := op.process(p, src, op.Dst); err != nil {
			return err
		}
		if op.Dst != op.PipeName {
			l.Info("image saved", "path", op.Dst)
		}

	default:
		return errors.Errorf("unsupported source %s", src)
	}

	l.Info("done", "elapsed", utils.FormatTime(time.Since(now)))
	return nil
}

// consumer reads the path names from the paths channel and calls the resizing processor against the source image.
// Outputs mirror the layout of the root directory under op.Dst.
func (op *Ops) consumer(
	ctx context.Context,
	p *Processor,
	root string,
	res chan<- result,
	paths <-chan string,
) {
	for src := range paths {
		dst, err := op.destPath(root, src)
		if err == nil {
			err = op.process(p, src, dst)
		}

		select {
		case <-ctx.Done():
			return
		case res <- result{
			path: dst,
			err:  err,
		}:
		}
	}
}

// destPath returns the output path of src, relative to root, under op.Dst
// and creates its parent directory.
func (op *Ops) destPath(root, src string) (string, error) {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", src)
	}
	dst := filepath.Join(op.Dst, destName(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", errors.Wrap(err, "unable to create the destination directory")
	}
	return dst, nil
}

// destName returns the output file name for src, switching formats that cannot be encoded.
func destName(src string) string {
	if ext := filepath.Ext(src); strings.EqualFold(ext, ".webp") {
		return strings.TrimSuffix(src, ext) + ".png"
	}
	return src
}

// process calls the resizer method over the source image and returns the error in case exists.
func (op *Ops) process(p *Processor, in, out string) (err error) {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			f.Close()
		}
	}()
	defer func() {
		f, ok := dst.(*os.File)
		if !ok || f == os.Stdout {
			return
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		// remove the generated image file in case of an error
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if op.Spinner != nil {
		op.Spinner.Start()
		defer op.Spinner.Stop()
	}

	if err := p.Process(src, dst); err != nil {
		return errors.Wrapf(err, "resizing %s", in)
	}
	return nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to open the source file")
		}
		src = f
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			closeReader(src)
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.Create(out)
		if err != nil {
			closeReader(src)
			return nil, nil, errors.Wrap(err, "unable to create the destination file")
		}
		dst = f
	}
	return src, dst, nil
}

func closeReader(r io.Reader) {
	if f, ok := r.(*os.File); ok && f != os.Stdin {
		f.Close()
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each supported file to a new channel.
// It finishes in case the context is canceled.
func walkDir(
	ctx context.Context,
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}
			if !isValidExtension(strings.ToLower(filepath.Ext(f.Name())), srcExts) {
				return nil
			}
			select {
			case <-ctx.Done():
				return errors.New("directory walk cancelled")
			case pathChan <- path:
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
