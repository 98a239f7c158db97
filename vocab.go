package charvocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// StartToken marks the beginning of a name
	StartToken = "<s>"
	// EndToken marks the end of a name
	EndToken = "<e>"
)

var (
	ErrTokenCollision = errors.New("token collision")
	ErrIndexCollision = errors.New("index collision")
	ErrUnknownRune    = errors.New("unknown rune")
	ErrUnknownID      = errors.New("unknown id")
)

// Vocab is a bidirectional mapping between characters and indices. The
// start sentinel always has index 0 and the end sentinel always has the
// largest index.
type Vocab struct {
	c2i   map[string]int
	i2c   map[int]string
	start string
	end   string
}

func newVocab(d *dict, start, end string) (*Vocab, error) {
	if start == end {
		return nil, fmt.Errorf("%w: start and end sentinels are both %q", ErrTokenCollision, start)
	}
	c2i := make(map[string]int, d.Size()+2)
	d.Range(func(id int, ch rune) {
		c2i[string(ch)] = id
	})
	for _, tk := range []string{start, end} {
		if _, ok := c2i[tk]; ok {
			return nil, fmt.Errorf("%w: sentinel %q is also a character", ErrTokenCollision, tk)
		}
	}
	c2i[start] = 0
	c2i[end] = len(c2i)
	i2c, err := invert(c2i)
	if err != nil {
		return nil, err
	}
	return &Vocab{
		c2i:   c2i,
		i2c:   i2c,
		start: start,
		end:   end,
	}, nil
}

func invert(c2i map[string]int) (map[int]string, error) {
	i2c := make(map[int]string, len(c2i))
	for tk, id := range c2i {
		if exists, ok := i2c[id]; ok {
			return nil, fmt.Errorf("%w: %q and %q share index %d", ErrIndexCollision, exists, tk, id)
		}
		i2c[id] = tk
	}
	return i2c, nil
}

func (v *Vocab) Len() int {
	return len(v.c2i)
}

// ID returns the index of a character or sentinel.
func (v *Vocab) ID(token string) (int, bool) {
	id, ok := v.c2i[token]
	return id, ok
}

// Token returns the character or sentinel stored at id.
func (v *Vocab) Token(id int) (string, bool) {
	tk, ok := v.i2c[id]
	return tk, ok
}

// Start returns the index of the start sentinel.
func (v *Vocab) Start() int {
	return v.c2i[v.start]
}

// End returns the index of the end sentinel.
func (v *Vocab) End() int {
	return v.c2i[v.end]
}

// C2I returns a copy of the character to index map.
func (v *Vocab) C2I() map[string]int {
	ret := make(map[string]int, len(v.c2i))
	for k, id := range v.c2i {
		ret[k] = id
	}
	return ret
}

// I2C returns a copy of the index to character map.
func (v *Vocab) I2C() map[int]string {
	ret := make(map[int]string, len(v.i2c))
	for id, k := range v.i2c {
		ret[id] = k
	}
	return ret
}

// Tokens returns every token ordered by index.
func (v *Vocab) Tokens() []string {
	ids := make([]int, 0, len(v.i2c))
	for id := range v.i2c {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	ret := make([]string, len(ids))
	for i, id := range ids {
		ret[i] = v.i2c[id]
	}
	return ret
}

// Encode converts a name to [start, chars..., end]. The name is used as
// given, callers are expected to pass it through Normalize first.
func (v *Vocab) Encode(name string) ([]int, error) {
	ret := make([]int, 0, len(name)+2)
	ret = append(ret, v.Start())
	for _, ch := range name {
		id, ok := v.c2i[string(ch)]
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownRune, ch, name)
		}
		ret = append(ret, id)
	}
	return append(ret, v.End()), nil
}

// Decode converts ids back to a name, dropping sentinels.
func (v *Vocab) Decode(ids []int) (string, error) {
	var sb strings.Builder
	start, end := v.Start(), v.End()
	for _, id := range ids {
		if id == start || id == end {
			continue
		}
		tk, ok := v.i2c[id]
		if !ok {
			return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
		}
		sb.WriteString(tk)
	}
	return sb.String(), nil
}
