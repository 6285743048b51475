package gdfmm

import (
	"image"
	"math"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
	"github.com/pkg/errors"

	"github.com/FYP-DES5/gdfmm/rimage"
	"github.com/FYP-DES5/gdfmm/utils"
)

// Hole is one 4-connected region of missing depth data.
type Hole struct {
	// Pixels are the unknown pixels of the region.
	Pixels []image.Point
	// BorderSamples counts the known pixels 4-adjacent to the region.
	BorderSamples int
	// MultiModal reports whether the border depths form more than one peak,
	// which usually means the hole straddles a depth edge between objects.
	MultiModal bool
	// ClusterDepths and ClusterColors describe the foreground/background split
	// of a multimodal border: the two depth cluster centers and the average
	// border color of each cluster.
	ClusterDepths [2]float64
	ClusterColors [2]rimage.Color
	// MeanBorderGradient is the average depth gradient magnitude on the border.
	MeanBorderGradient float64
	// InteriorDistance is the largest 4-connected distance from any pixel of
	// the hole to known data. 0 means the hole is unreachable from any seed.
	InteriorDistance int
}

// HoleStats summarizes the missing regions of a depth map, to judge whether a
// fill is likely to succeed and with what window size.
type HoleStats struct {
	Holes       []Hole
	Unreachable int
	// MaxInteriorDistance is the largest InteriorDistance over all holes.
	MaxInteriorDistance int
}

// borderPoint feeds the kmeans split of a multimodal hole border. Points are
// clustered on their depth value alone; position and color ride along.
type borderPoint struct {
	p image.Point
	c rimage.Color
	d rimage.Depth
}

func (bp borderPoint) Coordinates() clusters.Coordinates {
	return clusters.Coordinates([]float64{float64(bp.d)})
}

func (bp borderPoint) Distance(p clusters.Coordinates) float64 {
	return math.Abs(float64(bp.d) - p[0])
}

// AnalyzeHoles segments the missing data of a depth map into connected regions
// and reports statistics about each. The color image must be aligned with the
// depth map, as for Fill.
func AnalyzeHoles(dm *rimage.DepthMap, img *rimage.Image) (*HoleStats, error) {
	if dm == nil || img == nil {
		return nil, errors.New("both a depth map and a color image are required")
	}
	if img.Width() != dm.Width() || img.Height() != dm.Height() {
		return nil, errors.Errorf("depth map (%dx%d) and color image (%dx%d) must have the same size",
			dm.Width(), dm.Height(), img.Width(), img.Height())
	}

	stats := &HoleStats{}
	d := newDepthField(dm)
	distances := distanceToKnown(dm)

	for _, seg := range segmentMissingData(dm) {
		hole := Hole{Pixels: seg}

		border := borderPoints(seg, dm, img)
		hole.BorderSamples = len(border)
		if len(border) == 0 {
			stats.Unreachable++
		}

		gradientSum := 0.0
		depths := make([]float64, 0, len(border))
		for _, bp := range border {
			depths = append(depths, float64(bp.d))
			gx, gy := depthGradient(d, bp.p.X, bp.p.Y)
			gradientSum += math.Hypot(gx, gy)
		}
		if len(border) > 0 {
			hole.MeanBorderGradient = gradientSum / float64(len(border))
		}

		hole.MultiModal = isMultiModal(depths, 3)
		if hole.MultiModal && len(border) >= 2 {
			if err := splitBorderClusters(border, &hole); err != nil {
				return nil, err
			}
		}

		for _, p := range seg {
			if dist := distances[(p.Y*dm.Width())+p.X]; dist > hole.InteriorDistance {
				hole.InteriorDistance = dist
			}
		}
		if hole.InteriorDistance > stats.MaxInteriorDistance {
			stats.MaxInteriorDistance = hole.InteriorDistance
		}

		stats.Holes = append(stats.Holes, hole)
	}
	return stats, nil
}

// RecommendedWindow returns the smallest reasonable prediction window for this
// map: wide enough that the most buried unknown pixel can still see known
// data, and never narrower than the current window.
func (s *HoleStats) RecommendedWindow(current int) int {
	needed := 2*s.MaxInteriorDistance + 1
	if needed%2 == 0 {
		needed++
	}
	return utils.MaxInt(current, needed)
}

// segmentMissingData groups the unknown pixels into 4-connected regions.
func segmentMissingData(dm *rimage.DepthMap) [][]image.Point {
	seen := make([]bool, dm.Width()*dm.Height())
	var segments [][]image.Point

	for y := 0; y < dm.Height(); y++ {
		for x := 0; x < dm.Width(); x++ {
			k := (y * dm.Width()) + x
			if seen[k] || dm.GetDepth(x, y) != 0 {
				continue
			}
			var seg []image.Point
			queue := []image.Point{{x, y}}
			seen[k] = true
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				seg = append(seg, p)
				for _, delta := range fourNeighbors {
					nx, ny := p.X+delta.X, p.Y+delta.Y
					nk := (ny * dm.Width()) + nx
					if !dm.In(nx, ny) || seen[nk] || dm.GetDepth(nx, ny) != 0 {
						continue
					}
					seen[nk] = true
					queue = append(queue, image.Point{nx, ny})
				}
			}
			segments = append(segments, seg)
		}
	}
	return segments
}

// borderPoints returns the known pixels 4-adjacent to a missing region.
func borderPoints(seg []image.Point, dm *rimage.DepthMap, img *rimage.Image) []borderPoint {
	seen := map[image.Point]bool{}
	var border []borderPoint
	for _, p := range seg {
		for _, delta := range fourNeighbors {
			n := image.Point{p.X + delta.X, p.Y + delta.Y}
			if !dm.In(n.X, n.Y) || seen[n] {
				continue
			}
			if z := dm.Get(n); z != 0 {
				seen[n] = true
				border = append(border, borderPoint{n, img.Get(n), z})
			}
		}
	}
	return border
}

// isMultiModal is a quick peak count over a histogram of depths with 100 unit
// wide bins. threshold sets how many empty bins must separate filled bins for
// them to count as separate peaks.
func isMultiModal(depths []float64, threshold int) bool {
	if len(depths) == 0 {
		return false
	}
	min, max := depths[0], depths[0]
	for _, v := range depths {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	nbins := utils.MaxInt(1, int((max-min)/100.))
	hist := histogram.Hist(nbins, depths)
	peaks := 0
	zeros := threshold
	for _, bkt := range hist.Buckets {
		if bkt.Count != 0 {
			if zeros >= threshold {
				peaks++
			}
			zeros = 0
		} else {
			zeros++
		}
	}
	return peaks > 1
}

// splitBorderClusters partitions a multimodal border into two depth clusters,
// recording the cluster centers and the average border color of each, the same
// foreground/background separation used for edge-aware filling.
func splitBorderClusters(border []borderPoint, hole *Hole) error {
	var observations clusters.Observations
	for _, bp := range border {
		observations = append(observations, bp)
	}

	km := kmeans.New()
	parts, err := km.Partition(observations, 2)
	if err != nil {
		return errors.Wrap(err, "clustering hole border")
	}
	for i, c := range parts {
		if i >= 2 {
			break
		}
		hole.ClusterDepths[i] = c.Center[0]
		colorSlice := make([]rimage.Color, 0, len(c.Observations))
		for _, obs := range c.Observations {
			colorSlice = append(colorSlice, obs.(borderPoint).c)
		}
		hole.ClusterColors[i] = rimage.AverageColor(colorSlice)
	}
	return nil
}

// distanceToKnown is a multi-source BFS from every known pixel across the
// unknown region; the result holds, for each unknown pixel, its 4-connected
// distance to the nearest known pixel (0 for known or unreachable pixels).
func distanceToKnown(dm *rimage.DepthMap) []int {
	w, h := dm.Width(), dm.Height()
	dist := make([]int, w*h)
	visited := make([]bool, w*h)
	var queue []image.Point

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if dm.GetDepth(x, y) != 0 {
				visited[(y*w)+x] = true
				queue = append(queue, image.Point{x, y})
			}
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, delta := range fourNeighbors {
			nx, ny := p.X+delta.X, p.Y+delta.Y
			nk := (ny * w) + nx
			if !dm.In(nx, ny) || visited[nk] {
				continue
			}
			visited[nk] = true
			dist[nk] = dist[(p.Y*w)+p.X] + 1
			queue = append(queue, image.Point{nx, ny})
		}
	}
	return dist
}
