package simple16

// config describes one Simple16 selector: a word holding exactly count
// values, each packed into width bits within the 28-bit payload region
// (the top 4 bits of the word are reserved for the selector itself).
type config struct {
	count int
	width int
}

// table is the 16-entry selector table used by this package. It is not
// the mixed-width Anh-Moffat layout, so words it produces are not
// interchangeable with other Simple16 implementations. Selector s occupies
// s<<28 in the top 4 bits of a word; its config says how many payload
// slots follow and how wide each is.
//
// Entries are ordered by strictly increasing width (and therefore
// non-increasing slot count), so that trying selectors in ascending order
// and stopping at the first one whose width fits every value in its group
// is exactly the greedy "smallest selector that fits" rule: earlier
// selectors always pack at least as many values per word as later ones,
// so the first fit is also the most space-efficient.
//
// See DESIGN.md for why this table uses a uniform width per selector
// (Simple-9 style, extended to 16 widths) rather than the literature's
// mixed-width slot layout: the retrieved corpus has no bit-exact reference
// for Simple16's original mixed layout to verify against, and a uniform
// per-selector width is a documented, self-consistent resolution instead.
var table = [16]config{
	{count: 28, width: 1},
	{count: 14, width: 2},
	{count: 9, width: 3},
	{count: 7, width: 4},
	{count: 5, width: 5},
	{count: 4, width: 6},
	{count: 4, width: 7},
	{count: 3, width: 8},
	{count: 3, width: 9},
	{count: 2, width: 10},
	{count: 2, width: 11},
	{count: 2, width: 12},
	{count: 2, width: 13},
	{count: 2, width: 14},
	{count: 1, width: 21},
	{count: 1, width: 28},
}

// maxValue is the largest value Simple16 can represent: a single value
// packed at the widest available selector (28 bits).
const maxValue = (uint64(1) << 28) - 1
