package core

import "fmt"

// VecPool is a bump allocator for intermediate vectors in the render loop.
// Each worker owns its own pool; pools are never shared across goroutines.
// Allocation is a cursor increment into fixed blocks, so pointers handed out
// stay valid until the mark they were allocated under is released.
type VecPool struct {
	blocks    [][]Vec3
	blockSize int
	maxVecs   int
	block     int // Current block index
	offset    int // Next free slot in the current block
}

// NewVecPool creates a pool with one block of blockSize vectors, growing in
// blockSize steps up to maxVecs. Exceeding maxVecs is a fatal configuration
// error: it means a region or sample loop is missing a reset checkpoint.
func NewVecPool(blockSize, maxVecs int) *VecPool {
	if blockSize <= 0 || maxVecs < blockSize {
		panic(fmt.Sprintf("core: invalid vec pool size (block %d, max %d)", blockSize, maxVecs))
	}
	return &VecPool{
		blocks:    [][]Vec3{make([]Vec3, blockSize)},
		blockSize: blockSize,
		maxVecs:   maxVecs,
	}
}

// Alloc returns a pooled vector initialized to (x, y, z)
func (p *VecPool) Alloc(x, y, z float64) *Vec3 {
	if p.offset == p.blockSize {
		p.block++
		p.offset = 0
		if p.block == len(p.blocks) {
			if (p.block+1)*p.blockSize > p.maxVecs {
				panic(fmt.Sprintf("core: vec pool exceeded maximum of %d vectors", p.maxVecs))
			}
			p.blocks = append(p.blocks, make([]Vec3, p.blockSize))
		}
	}
	v := &p.blocks[p.block][p.offset]
	p.offset++
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Mark returns a checkpoint for the current allocation cursor
func (p *VecPool) Mark() int {
	return p.block*p.blockSize + p.offset
}

// Release rewinds the cursor to a previous checkpoint. Vectors allocated
// after the mark are reused by subsequent Alloc calls.
func (p *VecPool) Release(mark int) {
	if mark < 0 || mark > p.Mark() {
		panic(fmt.Sprintf("core: vec pool release to invalid mark %d (cursor %d)", mark, p.Mark()))
	}
	p.block = mark / p.blockSize
	p.offset = mark % p.blockSize
	if p.block == len(p.blocks) {
		// Mark sits exactly at the end of the last block
		p.block--
		p.offset = p.blockSize
	}
}

// Reset rewinds the cursor to the start of the pool
func (p *VecPool) Reset() {
	p.block = 0
	p.offset = 0
}

// InUse returns the number of vectors currently allocated
func (p *VecPool) InUse() int {
	return p.block*p.blockSize + p.offset
}
