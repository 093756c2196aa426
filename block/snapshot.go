package block

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/dtype"
)

const (
	// MagicNumber identifies dtype plane snapshots (ASCII: "DTB1").
	MagicNumber = 0x44544231
	// Version is the current snapshot format version.
	Version = 0x00010000
)

// Compression selects the snapshot payload compression.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd (better ratio).
	CompressionZSTD Compression = 2
)

// snapshotHeader is the fixed-size leading section of a snapshot. It is
// followed by the sample type name and the (possibly compressed) payload.
// All integers are little-endian.
type snapshotHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Count       uint64
	RawSize     uint64
	StoredSize  uint64 // equals RawSize when the payload is stored raw
	Checksum    uint32 // CRC32 (IEEE) of the raw payload
	NameLen     uint16
	Padding2    [2]byte
}

// zstd coders are stateful and expensive to build; pool them across
// snapshots.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// WriteSnapshot writes a plane of samples to w. The payload layout is the
// in-memory sample layout in little-endian order, so only fixed-width
// sample types can be snapshotted; reference-shaped types (bigcomplex)
// return an encoding error.
func WriteSnapshot[T any](w io.Writer, typ dtype.Type[T], samples []T, compression Compression) error {
	var payload bytes.Buffer
	if err := binary.Write(&payload, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("encode samples: %w", err)
	}

	raw := payload.Bytes()
	stored, compression, err := compressPayload(raw, compression)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	name := typ.Name()
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("sample type name too long: %d bytes", len(name))
	}

	header := snapshotHeader{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(compression),
		Count:       uint64(len(samples)),
		RawSize:     uint64(len(raw)),
		StoredSize:  uint64(len(stored)),
		Checksum:    crc32.ChecksumIEEE(raw),
		NameLen:     uint16(len(name)),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("write type name: %w", err)
	}
	if _, err := w.Write(stored); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	return nil
}

// ReadSnapshot reads a plane of samples written by WriteSnapshot. The
// snapshot must have been written with the same sample type.
func ReadSnapshot[T any](r io.Reader, typ dtype.Type[T]) ([]T, error) {
	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}

	name := make([]byte, header.NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("read type name: %w", err)
	}
	if string(name) != typ.Name() {
		return nil, &ErrTypeMismatch{Want: typ.Name(), Got: string(name)}
	}

	stored := make([]byte, header.StoredSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	raw, err := decompressPayload(stored, Compression(header.Compression), header.RawSize)
	if err != nil {
		return nil, err
	}

	if crc32.ChecksumIEEE(raw) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	samples := make([]T, header.Count)
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}

	return samples, nil
}

// compressPayload compresses raw per the requested compression. When the
// codec cannot shrink the payload it is stored raw instead, and the
// returned Compression reflects that.
func compressPayload(raw []byte, compression Compression) ([]byte, Compression, error) {
	if compression == CompressionNone || len(raw) == 0 {
		return raw, CompressionNone, nil
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err != nil {
			return nil, 0, err
		}
		if n == 0 {
			// Incompressible.
			return raw, CompressionNone, nil
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		compressed = enc.EncodeAll(raw, nil)
	default:
		return nil, 0, fmt.Errorf("unknown compression: %d", compression)
	}

	if len(compressed) >= len(raw) {
		return raw, CompressionNone, nil
	}

	return compressed, compression, nil
}

func decompressPayload(stored []byte, compression Compression, rawSize uint64) ([]byte, error) {
	switch compression {
	case CompressionNone:
		if uint64(len(stored)) != rawSize {
			return nil, ErrCorruptSnapshot
		}
		return stored, nil
	case CompressionLZ4:
		raw := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(stored, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if uint64(n) != rawSize {
			return nil, ErrCorruptSnapshot
		}
		return raw, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		raw, err := dec.DecodeAll(stored, make([]byte, 0, rawSize))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		if uint64(len(raw)) != rawSize {
			return nil, ErrCorruptSnapshot
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("unknown compression: %d", compression)
	}
}
