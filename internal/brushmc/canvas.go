package brushmc

// Canvas stores, per pixel, a fixed-capacity bag of recently deposited
// pigment ids. Bags live in one flat arena so the kernel reads
// contiguous memory: (y*Width+x)*BagSize + slot. Slot 0 is the oldest
// deposit; new pigment evicts from the front and fills the tail.
type Canvas struct {
	Width, Height int
	BagSize       int
	Bags          []uint8
}

// NewCanvas allocates the bag arena with every slot holding paper.
func NewCanvas(width, height, bagSize int) *Canvas {
	if width <= 0 || height <= 0 || bagSize <= 0 {
		panic("canvas dimensions and bag size must be positive")
	}
	bags := make([]uint8, width*height*bagSize)
	for i := range bags {
		bags[i] = PaperID
	}
	c := &Canvas{Width: width, Height: height, BagSize: bagSize, Bags: bags}
	DebugLog("Created canvas %dx%d, bag size %d (%d bytes)", width, height, bagSize, len(bags))
	return c
}

// bagIndex returns the arena offset of pixel (x,y)'s bag.
func (c *Canvas) bagIndex(x, y int) int {
	return (y*c.Width + x) * c.BagSize
}

// Bag returns pixel (x,y)'s bag as a view into the arena.
func (c *Canvas) Bag(x, y int) []uint8 {
	i := c.bagIndex(x, y)
	return c.Bags[i : i+c.BagSize]
}

// deposit ages the bag at (x,y) by nAdd slots and fills the freed tail
// with pid. The surviving entries are the newest BagSize-nAdd ones; they
// move to the front with their relative recency order preserved. copy
// runs front-to-back, so the shifted region never reads a slot it has
// already overwritten.
func (c *Canvas) deposit(x, y int, pid uint8, nAdd int) {
	if nAdd <= 0 {
		return
	}
	bag := c.Bag(x, y)
	if nAdd >= c.BagSize {
		for i := range bag {
			bag[i] = pid
		}
		return
	}
	keep := c.BagSize - nAdd
	copy(bag[:keep], bag[nAdd:])
	for i := keep; i < c.BagSize; i++ {
		bag[i] = pid
	}
}
