package hierarchy

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/aretw0/lineage/pkg/domain"
	"lukechampine.com/blake3"
)

// computeFingerprint hashes a canonical, order-sensitive encoding of the edge list.
// Every field is length-prefixed, so names may hold any byte.
func computeFingerprint(edges []domain.Edge) string {
	hasher := blake3.New(32, nil)
	var buf []byte
	for _, e := range edges {
		kind := e.Kind
		if kind == "" {
			kind = domain.EdgeInherits
		}
		buf = buf[:0]
		for _, field := range [...]string{string(kind), e.Child, e.Parent, e.Link} {
			buf = binary.AppendUvarint(buf, uint64(len(field)))
			buf = append(buf, field...)
		}
		hasher.Write(buf)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// FingerprintEdges returns the fingerprint a hierarchy built from edges would have,
// provided edges are already in canonical order (see Hierarchy.Edges).
func FingerprintEdges(edges []domain.Edge) string {
	return computeFingerprint(edges)
}
