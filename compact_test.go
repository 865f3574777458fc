package bitpage

import "testing"

func testPolicy() CompactionPolicy {
	return CompactionPolicy{
		SmallThreshold:   4,
		DensityThreshold: 0.75,
		FullnessHigh:     0.75,
		FullnessLow:      0.25,
	}
}

func TestCompact_EmptyCollapses(t *testing.T) {
	bound := boundOf(10, 0)
	if got := Compact(TagSparseZeroHole, nil, bound, testPolicy()); got.Tag() != TagAllZeros {
		t.Errorf("%s: empty ZH list should collapse to AllZeros, got %v", t.Name(), got.Tag())
	}
	if got := Compact(TagSparseOneHole, nil, bound, testPolicy()); got.Tag() != TagAllOnes {
		t.Errorf("%s: empty OH list should collapse to AllOnes, got %v", t.Name(), got.Tag())
	}
}

func TestCompact_BelowThresholdKeepsNativeTag(t *testing.T) {
	bound := boundOf(10, 0)
	pages := []PagePosition{{PageIndex: 0, Word: Page(1)}}
	got := Compact(TagSparseZeroHole, pages, bound, testPolicy())
	if got.Tag() != TagSparseZeroHole {
		t.Errorf("%s: expected native tag kept below SmallThreshold, got %v", t.Name(), got.Tag())
	}
}

func TestCompact_DenseZeroHoleRewritesToOneHole(t *testing.T) {
	bound := boundOf(5, 0)
	// six consecutive, nearly-full pages: length 6 > SmallThreshold(4),
	// density 1.0, fullness 63/64, well above FullnessHigh.
	pages := make([]PagePosition, 0, 6)
	for i := uint64(0); i <= 5; i++ {
		pages = append(pages, PagePosition{PageIndex: i, Word: AllOnesPage &^ 1})
	}
	got := Compact(TagSparseZeroHole, pages, bound, testPolicy())
	if got.Tag() != TagSparseOneHole {
		t.Fatalf("%s: expected rewrite to SparseOneHole, got %v", t.Name(), got.Tag())
	}
	for _, p := range got.Pages() {
		if p.Word == AllOnesPage {
			t.Errorf("%s: OneHole representation must not contain an explicit all-ones word", t.Name())
		}
	}
	for i := uint64(0); i <= 5; i++ {
		if got.IsSet(i, 0) {
			t.Errorf("%s: bit 0 of page %d should read clear after rewrite", t.Name(), i)
		}
		if !got.IsSet(i, 1) {
			t.Errorf("%s: bit 1 of page %d should read set after rewrite", t.Name(), i)
		}
	}
}

func TestCompact_SparseOneHoleRewritesToZeroHole(t *testing.T) {
	bound := boundOf(5, 0)
	pages := make([]PagePosition, 0, 6)
	for i := uint64(0); i <= 5; i++ {
		pages = append(pages, PagePosition{PageIndex: i, Word: Page(1)})
	}
	got := Compact(TagSparseOneHole, pages, bound, testPolicy())
	if got.Tag() != TagSparseZeroHole {
		t.Fatalf("%s: expected rewrite to SparseZeroHole, got %v", t.Name(), got.Tag())
	}
	for i := uint64(0); i <= 5; i++ {
		if !got.IsSet(i, 0) {
			t.Errorf("%s: bit 0 of page %d should read set after rewrite", t.Name(), i)
		}
		if got.IsSet(i, 1) {
			t.Errorf("%s: bit 1 of page %d should read clear after rewrite", t.Name(), i)
		}
	}
}

func TestCompact_SparseStaysSparseWhenNeitherThresholdMet(t *testing.T) {
	bound := boundOf(5, 0)
	// span 6, density 1.0, but fullness (~1/64 per page) is far below
	// FullnessHigh -- should stay SparseZeroHole.
	pages := make([]PagePosition, 0, 6)
	for i := uint64(0); i <= 5; i++ {
		pages = append(pages, PagePosition{PageIndex: i, Word: Page(1)})
	}
	got := Compact(TagSparseZeroHole, pages, bound, testPolicy())
	if got.Tag() != TagSparseZeroHole {
		t.Errorf("%s: expected no rewrite, got %v", t.Name(), got.Tag())
	}
}
