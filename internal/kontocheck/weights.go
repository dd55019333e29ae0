package kontocheck

// Weight vectors, written left to right over the account digits they apply
// to. The Bundesbank specification lists weights right to left; the vectors
// here are already reversed so they line up with string indices.
var (
	weights00 = []int{2, 1, 2, 1, 2, 1, 2, 1, 2}
	weights01 = []int{1, 7, 3, 1, 7, 3, 1, 7, 3}
	weights02 = []int{2, 9, 8, 7, 6, 5, 4, 3, 2}
	weights04 = []int{4, 3, 2, 7, 6, 5, 4, 3, 2}
	weights05 = []int{1, 3, 7, 1, 3, 7, 1, 3, 7}
	weights07 = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	weights13 = []int{1, 2, 1, 2, 1, 2}
	weights15 = []int{5, 4, 3, 2}
	weights18 = []int{3, 1, 7, 9, 3, 1, 7, 9, 3}
	weights19 = []int{1, 9, 8, 7, 6, 5, 4, 3, 2}
	weights20 = []int{3, 9, 8, 7, 6, 5, 4, 3, 2}
	weights24 = []int{1, 2, 3}
	weights25 = []int{9, 8, 7, 6, 5, 4, 3, 2}
	weights26 = []int{2, 7, 6, 5, 4, 3, 2}
	weights28 = []int{8, 7, 6, 5, 4, 3, 2}
	weights30 = []int{2, 1, 2, 1, 2}
	weights31 = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	weights34 = []int{7, 9, 10, 5, 8, 4, 2}
	weights36 = []int{5, 8, 4, 2}
	weights37 = []int{10, 5, 8, 4, 2}
	weights38 = []int{9, 10, 5, 8, 4, 2}
	weights40 = []int{6, 3, 7, 9, 10, 5, 8, 4, 2}
	weights43 = []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	weights55 = []int{8, 7, 8, 7, 6, 5, 4, 3, 2}
	weights71 = []int{6, 5, 4, 3, 2, 1}
	weights77a = []int{5, 4, 3, 2, 1}
	weights77b = []int{5, 4, 3, 4, 5}
	weights83 = []int{2, 3, 4, 5, 6, 7, 8, 9}
	weights88 = []int{2, 3, 4, 5, 6, 7, 8, 9, 10}
	weights91b = []int{2, 3, 4, 5, 6, 7}
	weights92 = []int{1, 7, 3, 1, 7, 3}
	weights98 = []int{3, 7, 1, 3, 7, 1, 3}
	weightsB9 = []int{1, 2, 3, 1, 2, 3, 1}

	// The descending runs 7..2 and 6..2 recur across dozens of methods.
	weightsDesc7 = []int{7, 6, 5, 4, 3, 2}
	weightsDesc6 = []int{6, 5, 4, 3, 2}
)

// Transformation table for the iterated M10H procedure (methods 27, 29, 69
// and descendants). The row applied to each of the nine leading digits is
// given by m10hRows.
var m10hTable = [4][10]int{
	{0, 1, 5, 9, 3, 7, 4, 8, 2, 6},
	{0, 1, 7, 6, 9, 8, 3, 2, 5, 4},
	{0, 1, 8, 4, 6, 2, 9, 5, 7, 3},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
}

var m10hRows = [9]int{0, 3, 2, 1, 0, 3, 2, 1, 0}
