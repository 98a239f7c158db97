package charvocab

import (
	"math"
	"sort"
)

// dict holds the distinct runes of a name list in code point order.
type dict struct {
	ch2id map[rune]int
	id2ch []rune
}

func buildDict(names []string) *dict {
	chars := make(map[rune]struct{})
	for _, name := range names {
		for _, ch := range name {
			chars[ch] = struct{}{}
		}
	}
	return newDict(chars)
}

func newDict(chars map[rune]struct{}) *dict {
	// two slots are taken by the sentinels
	if len(chars) >= math.MaxInt32-2 {
		panic("too many runes")
	}
	list := make([]rune, 0, len(chars))
	for ch := range chars {
		list = append(list, ch)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i] < list[j]
	})
	d := &dict{
		ch2id: make(map[rune]int, len(list)),
		id2ch: make([]rune, len(list)+1),
	}
	for i, ch := range list {
		idx := i + 1
		d.id2ch[idx] = ch
		d.ch2id[ch] = idx
	}
	return d
}

func (d *dict) Size() int {
	return len(d.id2ch) - 1
}

func (d *dict) ID(ch rune) (int, bool) {
	id, ok := d.ch2id[ch]
	return id, ok
}

func (d *dict) Rune(id int) rune {
	return d.id2ch[id]
}

// Range walks the runes in index order.
func (d *dict) Range(fn func(int, rune)) {
	for id := 1; id < len(d.id2ch); id++ {
		fn(id, d.id2ch[id])
	}
}
