package hashutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/kenchou/file-clean/pkg/errors"
	"github.com/kenchou/file-clean/pkg/types"
)

// Algorithm names a supported content digest
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// ChunkSize is the read buffer used while streaming file content
const ChunkSize = 4096

// ParseAlgorithm accepts an algorithm name in any case
func ParseAlgorithm(name string) (Algorithm, error) {
	switch alg := Algorithm(strings.ToLower(strings.TrimSpace(name))); alg {
	case MD5, SHA1, SHA256:
		return alg, nil
	case "":
		return MD5, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported hash algorithm %q", name).
			WithDetail("algorithm", name)
	}
}

func (a Algorithm) newHash() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	default:
		return md5.New()
	}
}

// Digest streams r through the algorithm and returns the lowercase hex sum
func Digest(r io.Reader, alg Algorithm) (string, error) {
	h := alg.newHash()
	buf := make([]byte, ChunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Digester computes file digests with a size ceiling
type Digester struct {
	alg     Algorithm
	maxSize int64
}

// New creates a Digester. A maxSize of zero or less disables the ceiling.
func New(alg Algorithm, maxSize int64) *Digester {
	if alg == "" {
		alg = MD5
	}
	return &Digester{alg: alg, maxSize: maxSize}
}

// Algorithm returns the configured algorithm
func (d *Digester) Algorithm() Algorithm {
	return d.alg
}

// FileDigest returns the hex digest of the file at path. Files above the
// size ceiling are not read and yield an ErrHashSkipped error.
func (d *Digester) FileDigest(fsys types.FS, path string) (string, error) {
	if d.maxSize > 0 {
		info, err := fsys.Stat(path)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
				WithDetail("path", path)
		}
		if info.Size() > d.maxSize {
			return "", errors.Newf(errors.ErrHashSkipped, "%s is %s, above the %s hashing limit",
				path, humanize.IBytes(uint64(info.Size())), humanize.IBytes(uint64(d.maxSize))).
				WithDetail("path", path).
				WithDetail("size", info.Size())
		}
	}

	file, err := fsys.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", path).
			WithDetail("path", path)
	}
	defer func() {
		_ = file.Close()
	}()

	sum, err := Digest(file, d.alg)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrHashFailed, "cannot hash %s", path).
			WithDetail("path", path)
	}
	return sum, nil
}
