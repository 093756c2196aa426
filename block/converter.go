package block

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/dtype"
	"github.com/hupe1980/dtype/bigcomplex"
)

// maskCheckInterval is how many masked samples are converted between
// context checks.
const maskCheckInterval = 4096

// Converter converts planes of U samples into planes of V samples. It is
// safe for concurrent use; scratch values are pooled per worker.
type Converter[U, V any] struct {
	src  dtype.Type[U]
	dst  dtype.Type[V]
	opts options

	scratch sync.Pool
}

// NewConverter creates a Converter from src to dst sample types.
func NewConverter[U, V any](src dtype.Type[U], dst dtype.Type[V], optFns ...Option) *Converter[U, V] {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Converter[U, V]{
		src:  src,
		dst:  dst,
		opts: opts,
		scratch: sync.Pool{
			New: func() any {
				return bigcomplex.New()
			},
		},
	}
}

// Convert converts every sample of in into out. The planes must have equal
// length; out is fully overwritten. Large planes are converted in parallel
// chunks.
func (c *Converter[U, V]) Convert(ctx context.Context, in []U, out []V) error {
	if len(in) != len(out) {
		return &ErrLengthMismatch{Expected: len(in), Actual: len(out)}
	}
	if len(in) == 0 {
		return nil
	}

	if len(in) <= c.opts.chunkSize || c.opts.parallelism <= 1 {
		if err := c.convertRange(ctx, in, out, 0, len(in)); err != nil {
			return err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.opts.parallelism)

		for lo := 0; lo < len(in); lo += c.opts.chunkSize {
			lo := lo
			hi := min(lo+c.opts.chunkSize, len(in))
			g.Go(func() error {
				return c.convertRange(gctx, in, out, lo, hi)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}

	if c.opts.logger != nil {
		c.opts.logger.Debug("converted plane",
			"samples", len(in),
			"src", c.src.Name(),
			"dst", c.dst.Name(),
		)
	}

	return nil
}

// ConvertMasked converts only the samples whose index is set in mask,
// leaving every other out sample untouched. Masked selections are
// typically sparse, so the work runs on a single worker.
func (c *Converter[U, V]) ConvertMasked(ctx context.Context, in []U, out []V, mask *roaring.Bitmap) error {
	if len(in) != len(out) {
		return &ErrLengthMismatch{Expected: len(in), Actual: len(out)}
	}
	if mask == nil || mask.IsEmpty() {
		return nil
	}
	if last := mask.Maximum(); int(last) >= len(in) {
		return &ErrMaskOutOfRange{Index: last, Len: len(in)}
	}

	tmp := c.getScratch()
	defer c.putScratch(tmp)

	n := 0
	it := mask.Iterator()
	for it.HasNext() {
		if n%maskCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		i := it.Next()
		dtype.CastWith(c.src, in[i], c.dst, &out[i], tmp)
		n++
	}

	if c.opts.logger != nil {
		c.opts.logger.Debug("converted masked plane",
			"samples", n,
			"src", c.src.Name(),
			"dst", c.dst.Name(),
		)
	}

	return nil
}

func (c *Converter[U, V]) convertRange(ctx context.Context, in []U, out []V, lo, hi int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp := c.getScratch()
	defer c.putScratch(tmp)

	for i := lo; i < hi; i++ {
		dtype.CastWith(c.src, in[i], c.dst, &out[i], tmp)
	}

	return nil
}

func (c *Converter[U, V]) getScratch() *bigcomplex.Number {
	return c.scratch.Get().(*bigcomplex.Number)
}

func (c *Converter[U, V]) putScratch(tmp *bigcomplex.Number) {
	c.scratch.Put(tmp)
}
