package parallel

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// Sort orders data ascending in place. Spans are sorted concurrently and then
// merged pairwise, each merge round also running concurrently.
func Sort(r *Runner, data []int64) {
	parts, release := r.fanout(len(data))
	defer release()
	if parts <= 1 {
		slices.Sort(data)
		return
	}

	spans := Split(len(data), parts)

	var g errgroup.Group
	for _, s := range spans {
		g.Go(func() error {
			slices.Sort(data[s.Lo:s.Hi])
			return nil
		})
	}
	_ = g.Wait()

	src, dst := data, make([]int64, len(data))
	for len(spans) > 1 {
		next := make([]Span, 0, (len(spans)+1)/2)

		var g errgroup.Group
		for i := 0; i < len(spans); i += 2 {
			if i+1 == len(spans) {
				s := spans[i]
				g.Go(func() error {
					copy(dst[s.Lo:s.Hi], src[s.Lo:s.Hi])
					return nil
				})
				next = append(next, s)
				continue
			}
			a, b := spans[i], spans[i+1]
			g.Go(func() error {
				merge(dst[a.Lo:b.Hi], src[a.Lo:a.Hi], src[b.Lo:b.Hi])
				return nil
			})
			next = append(next, Span{Lo: a.Lo, Hi: b.Hi})
		}
		_ = g.Wait()

		src, dst = dst, src
		spans = next
	}

	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// merge writes the ordered union of sorted a and b into dst.
// len(dst) must equal len(a)+len(b).
func merge(dst, a, b []int64) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	copy(dst[k:], b[j:])
}
