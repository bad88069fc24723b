package index

import (
	"encoding/hex"
	"os"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/mithrel/mdref/internal/mdscan"
)

// Checksum returns the hex BLAKE3 digest of raw content.
func Checksum(data []byte) string {
	h := blake3.New()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ChecksumFiles hashes each file keyed by its normalized absolute path.
// Unreadable files are left out; the caller already reported them.
func ChecksumFiles(paths []string) map[string]string {
	sums := make(map[string]string, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		sums[mdscan.AbsPath(p)] = Checksum(data)
	}
	return sums
}

// Stale returns the indexed paths whose content no longer matches the
// recorded checksum, deleted files included, sorted for stable output.
func Stale(sums map[string]string) []string {
	var out []string
	for path, sum := range sums {
		data, err := os.ReadFile(path)
		if err != nil || Checksum(data) != sum {
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out
}
