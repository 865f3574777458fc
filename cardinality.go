package bitpage

// PopCount returns the number of set bits in b within its bound.
func (b *Bitmap) PopCount() uint64 {
	switch b.tag {
	case TagAllZeros:
		return 0

	case TagAllOnes:
		return b.bound.Size()

	case TagSparseZeroHole:
		var total uint64
		for _, p := range b.pages {
			if p.PageIndex > b.bound.LastPage {
				continue
			}
			w := p.Word
			if p.PageIndex == b.bound.LastPage {
				w &= PrefixMask(b.bound.LastBit)
			}
			total += uint64(PopCount(w))
		}
		return total

	case TagSparseOneHole:
		var total uint64
		i := 0
		for pageIdx := uint64(0); pageIdx <= b.bound.LastPage; pageIdx++ {
			var word Page
			present := i < len(b.pages) && b.pages[i].PageIndex == pageIdx
			if present {
				word = b.pages[i].Word
				i++
			} else {
				word = AllOnesPage
			}
			if pageIdx == b.bound.LastPage {
				word &= PrefixMask(b.bound.LastBit)
			}
			total += uint64(PopCount(word))
		}
		return total

	default:
		panic("bitpage: invalid tag")
	}
}
