package logforms

import (
	"fmt"

	"github.com/njchilds90/logforms/ring"
)

// blockMatrix assembles a presentation matrix out of named row and column
// blocks. Entries are addressed as (blockName, localIndex); the builder
// computes the global offsets, so the assemblers never do flattened index
// arithmetic by hand. Blocks are declared first, then finish allocates the
// matrix and set fills it.
type blockMatrix struct {
	r         *ring.Ring
	rowBlocks []blockSpec
	colBlocks []blockSpec
	rowIndex  map[string]int
	colIndex  map[string]int
	m         *ring.Matrix
}

type blockSpec struct {
	name   string
	size   int
	offset int
}

func newBlockMatrix(r *ring.Ring) *blockMatrix {
	return &blockMatrix{
		r:        r,
		rowIndex: map[string]int{},
		colIndex: map[string]int{},
	}
}

func (b *blockMatrix) addRowBlock(name string, size int) {
	b.rowBlocks = b.addBlock(b.rowBlocks, b.rowIndex, name, size)
}

func (b *blockMatrix) addColBlock(name string, size int) {
	b.colBlocks = b.addBlock(b.colBlocks, b.colIndex, name, size)
}

func (b *blockMatrix) addBlock(blocks []blockSpec, index map[string]int, name string, size int) []blockSpec {
	if b.m != nil {
		panic("logforms: block declared after finish")
	}
	if size < 0 {
		panic(fmt.Sprintf("logforms: negative block size %d for %q", size, name))
	}
	if _, dup := index[name]; dup {
		panic(fmt.Sprintf("logforms: duplicate block name %q", name))
	}
	offset := 0
	if n := len(blocks); n > 0 {
		offset = blocks[n-1].offset + blocks[n-1].size
	}
	index[name] = len(blocks)
	return append(blocks, blockSpec{name: name, size: size, offset: offset})
}

func (b *blockMatrix) finish() {
	if b.m != nil {
		panic("logforms: finish called twice")
	}
	rows, cols := 0, 0
	for _, blk := range b.rowBlocks {
		rows += blk.size
	}
	for _, blk := range b.colBlocks {
		cols += blk.size
	}
	b.m = ring.NewMatrix(b.r, rows, cols)
}

func (b *blockMatrix) set(rowBlock string, i int, colBlock string, j int, p ring.Poly) {
	if b.m == nil {
		panic("logforms: set before finish")
	}
	rb := b.lookup(b.rowBlocks, b.rowIndex, rowBlock, i)
	cb := b.lookup(b.colBlocks, b.colIndex, colBlock, j)
	b.m.Set(rb.offset+i, cb.offset+j, p)
}

func (b *blockMatrix) lookup(blocks []blockSpec, index map[string]int, name string, local int) blockSpec {
	idx, ok := index[name]
	if !ok {
		panic(fmt.Sprintf("logforms: unknown block %q", name))
	}
	blk := blocks[idx]
	if local < 0 || local >= blk.size {
		panic(fmt.Sprintf("logforms: local index %d out of range for block %q of size %d", local, name, blk.size))
	}
	return blk
}

func (b *blockMatrix) matrix() *ring.Matrix {
	if b.m == nil {
		panic("logforms: matrix requested before finish")
	}
	return b.m
}
