package solver

import "github.com/albertqi/partition/kk"

// Space is the search space of one representation kind. The local-search
// driver is written once against it.
//
// Implementations may keep scratch buffers and are therefore NOT safe for
// concurrent use; create one per call with NewSpace.
type Space interface {
	// Kind reports the representation kind.
	Kind() Kind

	// Random overwrites dst with a uniformly random representation.
	Random(dst []int, src *Source)

	// Neighbor writes into dst a copy of cur changed by one randomized move.
	// dst and cur must not alias. With fewer than two weights no move exists
	// and dst becomes a plain copy of cur.
	Neighbor(dst, cur []int, src *Source)

	// Residue scores values generated by this space.
	Residue(weights []int64, values []int) (int64, error)
}

// NewSpace returns the Space for kind over instances of n weights.
func NewSpace(kind Kind, n int) (Space, error) {
	switch kind {
	case Direct:
		return directSpace{}, nil
	case Prepartitioned:
		return &prepartitionSpace{scratch: make([]int64, n)}, nil
	default:
		return nil, ErrUnsupportedKind
	}
}

// directSpace draws signs in {−1,+1}.
type directSpace struct{}

func (directSpace) Kind() Kind { return Direct }

func (directSpace) Random(dst []int, src *Source) {
	var i int
	for i = range dst {
		dst[i] = src.Sign()
	}
}

// Neighbor picks distinct a and b (b is resampled until it differs), flips the
// sign at a and redraws the sign at b. The redraw may leave b unchanged.
func (directSpace) Neighbor(dst, cur []int, src *Source) {
	copy(dst, cur)
	n := len(cur)
	if n < 2 {
		return
	}

	a := src.Index(n)
	b := src.Index(n)
	for a == b {
		b = src.Index(n)
	}
	dst[a] = -dst[a]
	dst[b] = src.Sign()
}

func (directSpace) Residue(weights []int64, values []int) (int64, error) {
	return directResidue(weights, values), nil
}

// prepartitionSpace draws bucket indices in [0,n) and scores through kk.
type prepartitionSpace struct {
	scratch []int64 // reduced multiset buffer, reused by every Residue call
}

func (*prepartitionSpace) Kind() Kind { return Prepartitioned }

func (*prepartitionSpace) Random(dst []int, src *Source) {
	n := len(dst)
	var i int
	for i = range dst {
		dst[i] = src.Bucket(n)
	}
}

// Neighbor picks a and b, resampling b until it differs from a's current
// bucket, then moves element a into bucket b. Exactly one assignment changes.
func (*prepartitionSpace) Neighbor(dst, cur []int, src *Source) {
	copy(dst, cur)
	n := len(cur)
	if n < 2 {
		return
	}

	a := src.Index(n)
	b := src.Index(n)
	for cur[a] == b {
		b = src.Index(n)
	}
	dst[a] = b
}

func (p *prepartitionSpace) Residue(weights []int64, values []int) (int64, error) {
	if len(p.scratch) != len(weights) {
		p.scratch = make([]int64, len(weights))
	}
	foldInto(p.scratch, weights, values)

	return kk.ReduceInPlace(p.scratch)
}
