// Package playlist keeps the play order of a fixed list of items.
//
// An Order tracks two index spaces: song indices (positions in the item
// list as given at construction) and play positions (positions in the
// current permutation of song indices). The cursor points into the
// permutation and is unset before the first positioning call and after
// stepping past either end.
package playlist

import "fmt"

// unset marks the cursor and the current song index as absent.
const unset = -1

// Rand is the random source used by Shuffle.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Order is a fixed item list with a mutable play order and cursor.
// It is not safe for concurrent use.
type Order struct {
	items []string
	order []int // permutation of song indices
	pos   int   // index into order, or unset
	song  int   // order[pos], or unset
}

// New creates an Order over items in their given sequence.
// Returns nil if items is empty. The cursor starts unset.
func New(items []string) *Order {
	if len(items) == 0 {
		return nil
	}
	o := &Order{
		items: make([]string, len(items)),
		order: identity(len(items)),
		pos:   unset,
		song:  unset,
	}
	copy(o.items, items)
	return o
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// Len returns the number of items.
func (o *Order) Len() int {
	return len(o.items)
}

// Items returns a copy of the items in their original sequence.
func (o *Order) Items() []string {
	result := make([]string, len(o.items))
	copy(result, o.items)
	return result
}

// PlayOrder returns a copy of the current permutation of song indices.
func (o *Order) PlayOrder() []int {
	result := make([]int, len(o.order))
	copy(result, o.order)
	return result
}

// Position returns the cursor within the play order.
func (o *Order) Position() (int, bool) {
	if o.pos == unset {
		return 0, false
	}
	return o.pos, true
}

// SongIndex returns the index of the current item in the original list.
func (o *Order) SongIndex() (int, bool) {
	if o.song == unset {
		return 0, false
	}
	return o.song, true
}

// Current returns the current item, or false if the cursor is unset.
func (o *Order) Current() (string, bool) {
	if o.song == unset {
		return "", false
	}
	return o.items[o.song], true
}

// Next moves the cursor forward and returns the new current item.
// Past the last position the cursor becomes unset. An unset cursor stays
// unset.
func (o *Order) Next() (string, bool) {
	if o.pos != unset {
		o.moveTo(o.pos + 1)
	}
	return o.Current()
}

// Prev moves the cursor backward and returns the new current item.
// Before the first position the cursor becomes unset. An unset cursor
// stays unset.
func (o *Order) Prev() (string, bool) {
	if o.pos != unset {
		o.moveTo(o.pos - 1)
	}
	return o.Current()
}

// First moves the cursor to the start of the play order.
func (o *Order) First() string {
	o.moveTo(0)
	item, _ := o.Current()
	return item
}

// Last moves the cursor to the end of the play order.
func (o *Order) Last() string {
	o.moveTo(len(o.order) - 1)
	item, _ := o.Current()
	return item
}

// moveTo sets the cursor to pos, or unsets it when pos is out of range.
func (o *Order) moveTo(pos int) {
	if pos < 0 || pos >= len(o.order) {
		o.pos, o.song = unset, unset
		return
	}
	o.pos, o.song = pos, o.order[pos]
}

// ResetOrder restores the original item sequence as the play order.
// The current item, if any, stays current.
func (o *Order) ResetOrder() {
	o.order = identity(len(o.items))
	// Under the identity permutation a song index is its own position.
	o.pos = o.song
}

// Shuffle replaces the play order with a uniform random permutation drawn
// from r. The current item, if any, stays current at its new position.
func (o *Order) Shuffle(r Rand) {
	order := identity(len(o.items))
	for i := len(order) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	pos := unset
	if o.song != unset {
		pos = indexOf(order, o.song)
		if pos == unset {
			panic(fmt.Sprintf("playlist: song %d missing from shuffled order %v", o.song, order))
		}
	}
	o.order, o.pos = order, pos
}

func indexOf(order []int, song int) int {
	for i, s := range order {
		if s == song {
			return i
		}
	}
	return unset
}

// Upcoming returns up to n items that follow the cursor in play order.
// With an unset cursor it returns nil.
func (o *Order) Upcoming(n int) []string {
	if o.pos == unset || n <= 0 {
		return nil
	}
	start := o.pos + 1
	end := min(start+n, len(o.order))
	if start >= end {
		return nil
	}
	result := make([]string, 0, end-start)
	for _, song := range o.order[start:end] {
		result = append(result, o.items[song])
	}
	return result
}
