package generate

import (
	"io"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// probeSampleEvery controls how often the probe compresses a block; sampling
// keeps benchmark mode from dominating the run.
const probeSampleEvery = 8

// maxProbeBlock caps the slice handed to the compressor per sample.
const maxProbeBlock = 64 * 1024

// CompressionProbe wraps the payload source and, on a sample of reads,
// LZ4-compresses the block that passed through to estimate how compressible
// the generated corpus is. Purely random payloads should come out close to
// ratio 1.0.
type CompressionProbe struct {
	inner io.Reader

	mu         sync.Mutex
	reads      int64
	sampled    int64
	original   int64
	compressed int64
}

func NewCompressionProbe(inner io.Reader) *CompressionProbe {
	return &CompressionProbe{inner: inner}
}

func (p *CompressionProbe) Read(b []byte) (int, error) {
	n, err := p.inner.Read(b)
	if n > 0 {
		p.sample(b[:n])
	}
	return n, err
}

func (p *CompressionProbe) sample(block []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reads++
	if p.reads%probeSampleEvery != 1 {
		return
	}
	if len(block) > maxProbeBlock {
		block = block[:maxProbeBlock]
	}

	buf := make([]byte, lz4.CompressBlockBound(len(block)))
	n, err := lz4.CompressBlock(block, buf, nil)
	if err != nil {
		return
	}
	if n == 0 {
		// Incompressible block; LZ4 would store it as-is.
		n = len(block)
	}

	p.sampled++
	p.original += int64(len(block))
	p.compressed += int64(n)
}

// Ratio reports compressed/original over all sampled blocks, or 1.0 when
// nothing was sampled.
func (p *CompressionProbe) Ratio() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.original == 0 {
		return 1.0
	}
	return float64(p.compressed) / float64(p.original)
}

// Samples reports how many blocks were compressed for the estimate.
func (p *CompressionProbe) Samples() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sampled
}
