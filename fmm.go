package gdfmm

import (
	"container/heap"
	"image"

	"github.com/pkg/errors"

	"github.com/FYP-DES5/gdfmm/rimage"
)

// ErrTooFewKnown is returned when a pixel keeps failing prediction because its
// window never accumulates enough known neighbors.
var ErrTooFewKnown = errors.New("too few known values. Try densifying your depth image first, or increasing the window size")

// maxDeferrals bounds how many times in a row a pixel may be re-enqueued after
// failed predictions before the fill gives up.
const maxDeferrals = 20

// A predictor proposes a depth for an unknown pixel, returning 0 when the
// window around it holds too little data to commit to a value.
type predictor func(d *depthField, img *rimage.Image, x, y int) (float64, error)

// bandItem is an entry of the narrow band. Priority carries double duty: known
// pixels enter at their speed value in [-1, 0) (seeds at 0), while deferred
// retries sit at -1 and below, decreasing each round, so all pending forward
// progress drains before any retry runs.
type bandItem struct {
	priority float64
	pt       image.Point
}

// narrowBand is the max-heap frontier of the marching front.
type narrowBand []bandItem

func (nb narrowBand) Len() int { return len(nb) }

func (nb narrowBand) Less(i, j int) bool { return nb[i].priority > nb[j].priority }

func (nb narrowBand) Swap(i, j int) { nb[i], nb[j] = nb[j], nb[i] }

func (nb *narrowBand) Push(x interface{}) {
	*nb = append(*nb, x.(bandItem))
}

func (nb *narrowBand) Pop() interface{} {
	old := *nb
	item := old[len(old)-1]
	*nb = old[:len(old)-1]
	return item
}

var fourNeighbors = []image.Point{{0, 1}, {1, 0}, {-1, 0}, {0, -1}}

// propagate marches the front from every known pixel into the unknown region,
// filling d in place. Each unknown pixel is written exactly once: the check
// against 0 happens before prediction, so when two parents race for the same
// neighbor, whichever pops first fills it and the other skips.
func propagate(d *depthField, img *rimage.Image, grad *gradientField, predict predictor) error {
	nb := make(narrowBand, 0, d.width*d.height)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.at(x, y) != 0 {
				nb = append(nb, bandItem{0, image.Point{x, y}})
			}
		}
	}
	heap.Init(&nb)

	for nb.Len() > 0 {
		item := heap.Pop(&nb).(bandItem)

		for _, delta := range fourNeighbors {
			nx, ny := item.pt.X+delta.X, item.pt.Y+delta.Y
			if !d.in(nx, ny) {
				continue
			}
			if d.at(nx, ny) != 0 {
				// already filled, possibly via a different parent
				continue
			}

			prediction, err := predict(d, img, nx, ny)
			if err != nil {
				return err
			}
			d.set(nx, ny, prediction)

			if prediction != 0 {
				heap.Push(&nb, bandItem{grad.speed(nx, ny), image.Point{nx, ny}})
			} else {
				// Retry the parent, not the neighbor: the neighbor will keep
				// failing until more of its surroundings are known.
				if item.priority < -maxDeferrals {
					return errors.Wrapf(ErrTooFewKnown, "gave up near (%d, %d)", nx, ny)
				}
				heap.Push(&nb, bandItem{item.priority - 1, item.pt})
			}
		}
	}
	return nil
}
