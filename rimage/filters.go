package rimage

// Sobel kernels approximate the gradient of image intensity, one per direction.
var (
	SobelX = [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	SobelY = [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// MakeRangeArray returns a centered slice of offsets for a kernel of the given
// length. When used as `for i, dx := range MakeRangeArray(n)`, i is the position
// within the kernel and dx gives the offset within the image.
// If length is even, the origin is to the right of middle, i.e. 4 -> {-2, -1, 0, 1}.
func MakeRangeArray(length int) []int {
	if length <= 0 {
		return make([]int, 0)
	}
	rangeArray := make([]int, length)
	var span int
	if length%2 == 0 {
		oddArr := MakeRangeArray(length - 1)
		span = length / 2
		rangeArray = append([]int{-span}, oddArr...)
	} else {
		span = (length - 1) / 2
		for i := 0; i < span; i++ {
			rangeArray[length-1-i] = span - i
			rangeArray[i] = -span + i
		}
	}
	return rangeArray
}
